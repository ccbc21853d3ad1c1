package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, environment variables and URL parameters.

const (
	// DefaultSpeedFactor leaves module pacing unchanged.
	DefaultSpeedFactor = 1.0

	// MinSpeedFactor is the exclusive lower bound for the speed factor.
	MinSpeedFactor = 0.01

	// DefaultInstantPrintLines prints every line with its normal delay.
	DefaultInstantPrintLines = 0
)

// ── Flag names ───────────────────────────────────────────────────────

const (
	FlagListModules       = "list-modules"
	FlagModules           = "modules"
	FlagSpeedFactor       = "speed-factor"
	FlagInstantPrintLines = "instant-print-lines"
	FlagExitAfterTime     = "exit-after-time"
	FlagExitAfterModules  = "exit-after-modules"
	FlagPrintCompletions  = "print-completions"
	FlagPrintManpage      = "print-manpage"
	FlagVerbose           = "verbose"
)

// ── URL query parameters (browser build) ─────────────────────────────

const (
	QueryModule            = "module"
	QuerySpeedFactor       = "speed-factor"
	QueryInstantPrintLines = "instant-print-lines"
)

// Shells lists the targets accepted by --print-completions.
var Shells = []string{"bash", "elvish", "fish", "powershell", "zsh"} //nolint:gochecknoglobals

const (
	speedFactorMessage = "speed factor must be larger than 0.01"
	minOneMessage      = "must be larger than 0"
)
