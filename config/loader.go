package config

// loader.go - configuration overrides from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (parsed by ArgsResolver)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	gerrors "genact/internal/errors"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GENACT_ prefix and feeds the flag of
// the same name, so it is validated exactly like the flag.

// EnvVars maps environment variable names to the flag they override.
var EnvVars = []struct { //nolint:gochecknoglobals
	Name string
	Flag string
}{
	{"GENACT_MODULES", FlagModules},
	{"GENACT_SPEED_FACTOR", FlagSpeedFactor},
	{"GENACT_INSTANT_PRINT_LINES", FlagInstantPrintLines},
	{"GENACT_EXIT_AFTER_TIME", FlagExitAfterTime},
	{"GENACT_EXIT_AFTER_MODULES", FlagExitAfterModules},
	{"GENACT_VERBOSE", FlagVerbose},
}

// LoadFromEnv applies environment overrides to every flag in fs that was
// not set on the command line.  Empty variables are ignored.  A bad value
// fails with a ConfigError naming the variable.
func LoadFromEnv(fs *flag.FlagSet, getenv func(string) string) error {
	for _, ev := range EnvVars {
		v := strings.TrimSpace(getenv(ev.Name))
		if v == "" || fs.Changed(ev.Flag) || fs.Lookup(ev.Flag) == nil {
			continue
		}

		if ev.Flag == FlagVerbose {
			if err := setCount(fs, v); err != nil {
				return gerrors.Rename(err, ev.Name)
			}
			continue
		}
		if err := fs.Set(ev.Flag, v); err != nil {
			return gerrors.Rename(flagError(err), ev.Name)
		}
	}
	return nil
}

// setCount sets the count flag to an absolute level.
func setCount(fs *flag.FlagSet, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return gerrors.Malformed(FlagVerbose, v, numErr(err))
	}
	if n < 0 {
		return gerrors.OutOfRange(FlagVerbose, v, "must not be negative")
	}
	return fs.Set(FlagVerbose, strconv.Itoa(n))
}
