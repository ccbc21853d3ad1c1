package config

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	gerrors "genact/internal/errors"
)

// Typed pflag values.  Each Set validates its input and returns a
// *gerrors.ConfigError, which pflag wraps in an InvalidValueError that
// still unwraps to it.

// ── speed factor ─────────────────────────────────────────────────────

type speedFactorValue struct{ p *float64 }

func (v speedFactorValue) Set(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return gerrors.Malformed(FlagSpeedFactor, s, numErr(err))
	}
	if !validSpeedFactor(f) {
		return gerrors.OutOfRange(FlagSpeedFactor, s, speedFactorMessage)
	}
	*v.p = f
	return nil
}

func (v speedFactorValue) String() string { return strconv.FormatFloat(*v.p, 'g', -1, 64) }
func (v speedFactorValue) Type() string   { return "float" }

// ── instant print lines ──────────────────────────────────────────────

type uint32Value struct {
	p    *uint32
	flag string
}

func (v uint32Value) Set(s string) error {
	n, err := parseUint32(v.flag, s)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

func (v uint32Value) String() string { return strconv.FormatUint(uint64(*v.p), 10) }
func (v uint32Value) Type() string   { return "uint32" }

// ── exit after modules ───────────────────────────────────────────────

// minOneValue is an optional uint32 that must be at least 1.
type minOneValue struct {
	p    **uint32
	flag string
}

func (v minOneValue) Set(s string) error {
	n, err := parseUint32(v.flag, s)
	if err != nil {
		return err
	}
	if n == 0 {
		return gerrors.OutOfRange(v.flag, s, minOneMessage)
	}
	*v.p = &n
	return nil
}

func (v minOneValue) String() string {
	if *v.p == nil {
		return ""
	}
	return strconv.FormatUint(uint64(**v.p), 10)
}

func (v minOneValue) Type() string { return "uint32" }

// ── exit after time ──────────────────────────────────────────────────

type durationValue struct {
	p    **time.Duration
	flag string
}

func (v durationValue) Set(s string) error {
	d, err := ParseDuration(s)
	if err != nil {
		ce := gerrors.Malformed(v.flag, s, err)
		ce.Hint = "use a duration such as 90s, 10min or 2h10min"
		return ce
	}
	*v.p = &d
	return nil
}

func (v durationValue) String() string {
	if *v.p == nil {
		return ""
	}
	return FormatDuration(**v.p)
}

func (v durationValue) Type() string { return "duration" }

// ── module selection ─────────────────────────────────────────────────

// moduleListValue accumulates an ordered, duplicate-free module
// selection.  Values may be repeated or comma-separated.
type moduleListValue struct {
	p   *[]string
	reg Registry
}

func (v moduleListValue) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !v.reg.Has(name) {
			return unknownModule(FlagModules, name, v.reg)
		}
		if !slices.Contains(*v.p, name) {
			*v.p = append(*v.p, name)
		}
	}
	return nil
}

func (v moduleListValue) String() string { return strings.Join(*v.p, ",") }
func (v moduleListValue) Type() string   { return "module" }

// ── completion shell ─────────────────────────────────────────────────

type shellValue struct{ p *string }

func (v shellValue) Set(s string) error {
	shell := strings.ToLower(strings.TrimSpace(s))
	if !isShell(shell) {
		return UnsupportedShell(s)
	}
	*v.p = shell
	return nil
}

func (v shellValue) String() string { return *v.p }
func (v shellValue) Type() string   { return "shell" }

// ── helpers ──────────────────────────────────────────────────────────

func parseUint32(flag, s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, gerrors.Malformed(flag, s, numErr(err))
	}
	return uint32(n), nil
}

// numErr drops the strconv prefix so messages read "invalid syntax"
// rather than `strconv.ParseFloat: parsing "x": invalid syntax`.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func isShell(name string) bool {
	return slices.Contains(Shells, name)
}

func unknownModule(field, name string, reg Registry) *gerrors.ConfigError {
	return &gerrors.ConfigError{
		Field:   field,
		Value:   name,
		Message: "unknown module",
		Hint:    "possible values: " + strings.Join(reg.Names(), ", "),
		Err:     gerrors.ErrUnknownModule,
	}
}

// UnsupportedShell is the error for a completion shell outside Shells.
func UnsupportedShell(name string) *gerrors.ConfigError {
	return &gerrors.ConfigError{
		Field:   FlagPrintCompletions,
		Value:   name,
		Message: "unsupported shell",
		Hint:    "possible values: " + strings.Join(Shells, ", "),
		Err:     gerrors.ErrUnsupportedShell,
	}
}
