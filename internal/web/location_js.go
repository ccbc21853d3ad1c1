//go:build js && wasm

package web

import (
	"io"
	"os"
	"syscall/js"
)

// Href returns window.location.href.
func Href() (string, error) {
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return "", ErrNoBrowser
	}
	href := loc.Get("href")
	if href.Type() != js.TypeString {
		return "", ErrNoBrowser
	}
	return href.String(), nil
}

// termWriter forwards output to an xterm.js style object exposing
// write(string).
type termWriter struct {
	term js.Value
}

func (w termWriter) Write(p []byte) (int, error) {
	// Terminals want CRLF; module output uses bare LF.
	buf := make([]byte, 0, len(p)+8)
	for _, c := range p {
		if c == '\n' {
			buf = append(buf, '\r')
		}
		buf = append(buf, c)
	}
	w.term.Call("write", string(buf))
	return len(p), nil
}

// Output returns a writer for the page's terminal when the page defines a
// global `term`, and os.Stdout (the browser console) otherwise.
func Output() io.Writer {
	t := js.Global().Get("term")
	if t.Type() == js.TypeObject && t.Get("write").Type() == js.TypeFunction {
		return termWriter{term: t}
	}
	return os.Stdout
}
