// Package config resolves the runtime configuration of genact from the
// environment it runs in: command-line arguments for the native binary,
// or the page URL for the browser build.
package config

import (
	"fmt"
	"math"
	"time"

	gerrors "genact/internal/errors"
)

// Registry is the read-only view of the module registry that resolution
// needs.  Names must be returned in registry order.
type Registry interface {
	Names() []string
	Has(name string) bool
}

// Settings are the fields shared by every environment.
type Settings struct {
	Modules           []string
	SpeedFactor       float64
	InstantPrintLines uint32
}

// Limits are the optional stopping conditions.  A nil field means the
// condition is not configured.
type Limits struct {
	ExitAfterTime    *time.Duration
	ExitAfterModules *uint32
}

// Config is the configuration of the native command-line binary.
type Config struct {
	Settings

	// ── Exit conditions ──────────────────────────────────────────────
	ExitAfterTime    *time.Duration
	ExitAfterModules *uint32

	// ── Output formatting ────────────────────────────────────────────
	ListModulesAndExit bool
	PrintCompletions   string // shell name, empty when not requested
	PrintManpage       bool

	// ── Diagnostics ──────────────────────────────────────────────────
	Verbose int
}

// WebConfig is the configuration of the browser build.  It carries no exit
// conditions: the page runs until the user navigates away.
type WebConfig struct {
	Settings
}

// Resolved is what a Resolver produces.  Both *Config and *WebConfig
// implement it.
type Resolved interface {
	Base() Settings
	Limits() Limits
}

// Base returns the shared settings.
func (c *Config) Base() Settings { return c.Settings }

// Limits returns the configured exit conditions.
func (c *Config) Limits() Limits {
	return Limits{ExitAfterTime: c.ExitAfterTime, ExitAfterModules: c.ExitAfterModules}
}

// Base returns the shared settings.
func (c *WebConfig) Base() Settings { return c.Settings }

// Limits is always empty for the browser build.
func (c *WebConfig) Limits() Limits { return Limits{} }

// ── Resolution contract ──────────────────────────────────────────────

// Policy names how a Resolver treats bad input.
type Policy int

const (
	// FailFast rejects bad input with a descriptive error.
	FailFast Policy = iota
	// FailSoft substitutes defaults and drops unknown names silently.
	FailSoft
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case FailSoft:
		return "fail-soft"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Resolver turns raw environment input into a Resolved configuration.
// Resolution happens once per process.
type Resolver interface {
	Resolve(reg Registry) (Resolved, error)
	Policy() Policy
}

// ── Normalization & validation ───────────────────────────────────────

// defaultModules fills an empty selection with every registry name.
func defaultModules(selected []string, reg Registry) []string {
	if len(selected) > 0 {
		return selected
	}
	return append([]string(nil), reg.Names()...)
}

// validSpeedFactor reports whether v is usable as a speed factor.
func validSpeedFactor(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > MinSpeedFactor
}

// Validate checks the invariants of a resolved configuration.
func (s *Settings) Validate(reg Registry) error {
	if len(s.Modules) == 0 {
		return &gerrors.ConfigError{
			Field:   "modules",
			Message: "no modules selected and the registry is empty",
			Err:     gerrors.ErrOutOfRange,
		}
	}
	for _, name := range s.Modules {
		if !reg.Has(name) {
			return unknownModule("modules", name, reg)
		}
	}
	if !validSpeedFactor(s.SpeedFactor) {
		return gerrors.OutOfRange("speed-factor", s.SpeedFactor, speedFactorMessage)
	}
	return nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate(reg Registry) error {
	if err := c.Settings.Validate(reg); err != nil {
		return err
	}
	if c.ExitAfterModules != nil && *c.ExitAfterModules == 0 {
		return gerrors.OutOfRange("exit-after-modules", 0, minOneMessage)
	}
	if c.ExitAfterTime != nil && *c.ExitAfterTime < 0 {
		return gerrors.OutOfRange("exit-after-time", *c.ExitAfterTime, "must not be negative")
	}
	if c.PrintCompletions != "" && !isShell(c.PrintCompletions) {
		return UnsupportedShell(c.PrintCompletions)
	}
	return nil
}
