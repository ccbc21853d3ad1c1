package util

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// WriteLine writes line followed by a newline in a single Write call so
// concurrent writers never interleave within a line.
func WriteLine(w io.Writer, line []byte) error {
	buf := GetBuf()
	defer PutBuf(buf)

	*buf = append(*buf, line...)
	*buf = append(*buf, '\n')
	_, err := w.Write(*buf)
	return err
}

// IsClosedOutput reports whether err means the reader of our output has
// gone away, e.g. `genact | head`.  Such errors end the run quietly.
func IsClosedOutput(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
