package core

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"genact/internal/registry"
)

// ListMode prints the available modules, one per line, with the command
// each one imitates.
type ListMode struct {
	Registry *registry.Registry
	Out      io.Writer
}

func (m *ListMode) Run(ctx context.Context) error {
	re := lipgloss.NewRenderer(m.Out)
	nameStyle := re.NewStyle().Bold(true)
	sigStyle := re.NewStyle().Faint(true)

	width := 0
	for _, name := range m.Registry.Names() {
		width = max(width, len(name))
	}

	for _, name := range m.Registry.Names() {
		mod, _ := m.Registry.Get(name)
		pad := fmt.Sprintf("%-*s", width, name)
		if _, err := fmt.Fprintf(m.Out, "%s  %s\n",
			nameStyle.Render(pad), sigStyle.Render(mod.Signature())); err != nil {
			return err
		}
	}
	return nil
}
