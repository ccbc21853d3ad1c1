// Package docs generates shell completion scripts and the man page from
// the command-line FlagSet, so generated documentation cannot drift from
// the flags actually accepted.
package docs

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	flag "github.com/spf13/pflag"

	"genact/config"
)

// Program is the command name completions are registered for.
const Program = "genact"

// Flag is the template view of one flag.
type Flag struct {
	Long     string
	Short    string
	Usage    string
	TakesArg bool
	Values   []string // fixed choices, if any
}

// Spellings returns "-s" and "--long" forms present for the flag.
func (f Flag) Spellings() []string {
	if f.Short != "" {
		return []string{"-" + f.Short, "--" + f.Long}
	}
	return []string{"--" + f.Long}
}

// data is passed to every template.
type data struct {
	Program string
	Version string
	Flags   []Flag
	Modules []string
	Env     []string
}

// flags collects the visible flags of fs in definition order.  Module
// and shell flags get their fixed value lists.
func flags(fs *flag.FlagSet, modules []string) []Flag {
	var out []Flag
	fs.VisitAll(func(f *flag.Flag) {
		if f.Hidden {
			return
		}
		df := Flag{
			Long:     f.Name,
			Short:    f.Shorthand,
			Usage:    f.Usage,
			TakesArg: f.NoOptDefVal == "",
		}
		switch f.Name {
		case config.FlagModules:
			df.Values = modules
		case config.FlagPrintCompletions:
			df.Values = config.Shells
		}
		out = append(out, df)
	})
	return out
}

func newData(fs *flag.FlagSet, modules []string, version string) data {
	d := data{
		Program: Program,
		Version: version,
		Flags:   flags(fs, modules),
		Modules: modules,
	}
	for _, ev := range config.EnvVars {
		d.Env = append(d.Env, ev.Name)
	}
	return d
}

// Completions writes the completion script for shell to w.
func Completions(w io.Writer, shell string, fs *flag.FlagSet, modules []string) error {
	tmpl, ok := completionTemplates[strings.ToLower(shell)]
	if !ok {
		return config.UnsupportedShell(shell)
	}
	return execute(w, tmpl, newData(fs, modules, ""))
}

// Manpage writes a roff man page to w.
func Manpage(w io.Writer, fs *flag.FlagSet, modules []string, version string) error {
	return execute(w, manpageTemplate, newData(fs, modules, version))
}

func execute(w io.Writer, t *template.Template, d data) error {
	if err := t.Execute(w, d); err != nil {
		return fmt.Errorf("docs: %s: %w", t.Name(), err)
	}
	return nil
}

// ── template helpers ─────────────────────────────────────────────────

var funcs = template.FuncMap{
	"join": strings.Join,
	"sq":   singleQuote,
	"roff": roffEscape,
	"zsh":  zshEscape,
	"fish": fishEscape,
	"ps":   psEscape,
}

// singleQuote escapes s for use inside a single-quoted shell string.
func singleQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// zshEscape escapes s for a zsh _arguments description.
func zshEscape(s string) string {
	s = singleQuote(s)
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}

// fishEscape escapes s for use inside a single-quoted fish string.
func fishEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}

// psEscape escapes s for use inside a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// roffEscape escapes hyphens and backslashes for roff.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\e`)
	return strings.ReplaceAll(s, "-", `\-`)
}
