package util

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal and
// $COLUMNS is unset.
const DefaultWidth = 80

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of w, falling back to $COLUMNS
// and then to DefaultWidth.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(fder); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}
