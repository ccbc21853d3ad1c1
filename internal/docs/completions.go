package docs

import "text/template"

var completionTemplates = map[string]*template.Template{
	"bash":       template.Must(template.New("bash").Funcs(funcs).Parse(bashTemplate)),
	"elvish":     template.Must(template.New("elvish").Funcs(funcs).Parse(elvishTemplate)),
	"fish":       template.Must(template.New("fish").Funcs(funcs).Parse(fishTemplate)),
	"powershell": template.Must(template.New("powershell").Funcs(funcs).Parse(powershellTemplate)),
	"zsh":        template.Must(template.New("zsh").Funcs(funcs).Parse(zshTemplate)),
}

const bashTemplate = `_{{.Program}}() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="{{range $i, $f := .Flags}}{{if $i}} {{end}}{{join $f.Spellings " "}}{{end}}"

    case "${prev}" in
{{- range .Flags}}{{if .TakesArg}}
        {{join .Spellings "|"}})
            COMPREPLY=({{if .Values}}$(compgen -W "{{join .Values " "}}" -- "${cur}"){{end}})
            return 0
            ;;
{{- end}}{{end}}
    esac

    COMPREPLY=($(compgen -W "${opts}" -- "${cur}"))
    return 0
}

complete -F _{{.Program}} -o bashdefault -o default {{.Program}}
`

const zshTemplate = `#compdef {{.Program}}

_{{.Program}}() {
    _arguments -s -S \
{{- range .Flags}}
        {{if .Short}}'({{join .Spellings " "}})'{-{{.Short}}{{if .TakesArg}}+{{end}},--{{.Long}}{{if .TakesArg}}={{end}}}'{{else}}'--{{.Long}}{{if .TakesArg}}={{end}}{{end}}[{{zsh .Usage}}]{{if .TakesArg}}:{{.Long}}:{{if .Values}}({{join .Values " "}}){{else}} {{end}}{{end}}' \
{{- end}}
        && return 0
}

_{{.Program}} "$@"
`

const fishTemplate = `{{range .Flags -}}
complete -c {{$.Program}}{{if .Short}} -s {{.Short}}{{end}} -l {{.Long}}{{if .TakesArg}} -r{{if .Values}} -f -a '{{join .Values " "}}'{{end}}{{end}} -d '{{fish .Usage}}'
{{end -}}
`

const elvishTemplate = `set edit:completion:arg-completer[{{.Program}}] = {|@words|
    var prev = $words[-2]
{{- range .Flags}}{{if .Values}}
    if (has-value [{{join .Spellings " "}}] $prev) {
        put{{range .Values}} {{.}}{{end}}
        return
    }
{{- end}}{{end}}
    put{{range .Flags}}{{range .Spellings}} {{.}}{{end}}{{end}}
}
`

const powershellTemplate = `using namespace System.Management.Automation

Register-ArgumentCompleter -Native -CommandName '{{.Program}}' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $prev = if ($wordToComplete) { $elements[-2] } else { $elements[-1] }

    $values = switch ($prev) {
{{- range .Flags}}{{if .Values}}
        { $_ -in @({{range $i, $s := .Spellings}}{{if $i}}, {{end}}'{{$s}}'{{end}}) } { @({{range $i, $v := .Values}}{{if $i}}, {{end}}'{{$v}}'{{end}}) }
{{- end}}{{end}}
        default { $null }
    }
    if ($values) {
        $values | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [CompletionResult]::new($_, $_, [CompletionResultType]::ParameterValue, $_)
        }
        return
    }

    @(
{{- range .Flags}}{{$f := .}}{{range .Spellings}}
        [CompletionResult]::new('{{.}}', '{{$f.Long}}', [CompletionResultType]::ParameterName, '{{ps $f.Usage}}')
{{- end}}{{end}}
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`
