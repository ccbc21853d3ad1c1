// Package errors provides domain-specific error types for genact.
//
// Resolution failures carry the offending setting, the rejected value and
// the violated constraint so the CLI can print one actionable line before
// exiting.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrMalformed        = errors.New("malformed value")
	ErrOutOfRange       = errors.New("value out of range")
	ErrUnknownModule    = errors.New("unknown module")
	ErrUnsupportedShell = errors.New("unsupported shell")
	ErrUnexpectedArg    = errors.New("unexpected argument")
)

// ── Structured error types ───────────────────────────────────────────

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // flag name without dashes, or an env var name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel classifying the failure
}

func (e *ConfigError) Error() string {
	msg := "config: " + e.field()
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// field renders flags as --name and leaves environment variables alone.
func (e *ConfigError) field() string {
	for _, r := range e.Field {
		if r >= 'a' && r <= 'z' {
			return "--" + e.Field
		}
	}
	return e.Field
}

// ── Constructors ─────────────────────────────────────────────────────

// Malformed reports a value that could not be parsed at all.
func Malformed(field string, value interface{}, cause error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: cause.Error(),
		Err:     ErrMalformed,
	}
}

// OutOfRange reports a value that parsed but violates a constraint.
func OutOfRange(field string, value interface{}, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     ErrOutOfRange,
	}
}

// Rename returns a copy of err attributed to field. Anything that is not a
// ConfigError is returned unchanged.
func Rename(err error, field string) error {
	var ce *ConfigError
	if !errors.As(err, &ce) {
		return err
	}
	renamed := *ce
	renamed.Field = field
	return &renamed
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use genact/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
