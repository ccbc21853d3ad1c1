package docs

import "text/template"

var manpageTemplate = template.Must(template.New("manpage").Funcs(funcs).Parse(manpageText))

const manpageText = `.TH {{.Program}} 1 "" "{{.Program}} {{roff .Version}}" "User Commands"
.SH NAME
{{.Program}} \- a nonsense activity generator
.SH SYNOPSIS
\fB{{.Program}}\fR
{{- range .Flags}} [\fB\-\-{{roff .Long}}\fR{{if .TakesArg}} \fI{{roff .Long}}\fR{{end}}]{{end}}
.SH DESCRIPTION
Pretend to be busy or waiting for your computer when you should actually be doing real work!
Impress people with your insane multitasking skills.
Just open a few instances of {{.Program}} and watch the show.
{{.Program}} has multiple scenes that pretend to be doing something exciting or useful
when in reality nothing is happening at all.
.SH OPTIONS
{{- range .Flags}}
.TP
{{if .Short}}\fB\-{{.Short}}\fR, {{end}}\fB\-\-{{roff .Long}}\fR{{if .TakesArg}} \fI{{roff .Long}}\fR{{end}}
{{roff .Usage}}
{{- if .Values}}
.br
\fIPossible values:\fR {{roff (join .Values ", ")}}
{{- end}}
{{- end}}
.SH MODULES
{{- range .Modules}}
.IP \(bu 2
{{roff .}}
{{- end}}
.SH ENVIRONMENT
Every variable is applied only when the matching option is not given on the command line.
{{- range .Env}}
.TP
\fB{{roff .}}\fR
{{- end}}
.SH VERSION
v{{roff .Version}}
`
