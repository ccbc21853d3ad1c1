//go:build !(js && wasm)

package web

import (
	"io"
	"os"
)

// Href always fails outside a browser.
func Href() (string, error) { return "", ErrNoBrowser }

// Output returns os.Stdout.
func Output() io.Writer { return os.Stdout }
