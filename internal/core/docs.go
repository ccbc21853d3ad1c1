package core

import (
	"context"
	"io"

	flag "github.com/spf13/pflag"

	"genact/internal/docs"
	"genact/internal/registry"
)

// CompletionMode prints a shell completion script.
type CompletionMode struct {
	Shell    string
	Flags    *flag.FlagSet
	Registry *registry.Registry
	Out      io.Writer
}

func (m *CompletionMode) Run(ctx context.Context) error {
	return docs.Completions(m.Out, m.Shell, m.Flags, m.Registry.Names())
}

// ManpageMode prints the roff man page.
type ManpageMode struct {
	Flags    *flag.FlagSet
	Registry *registry.Registry
	Version  string
	Out      io.Writer
}

func (m *ManpageMode) Run(ctx context.Context) error {
	return docs.Manpage(m.Out, m.Flags, m.Registry.Names(), m.Version)
}
