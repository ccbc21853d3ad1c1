package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	gerrors "genact/internal/errors"
)

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Settings: Settings{
			SpeedFactor:       DefaultSpeedFactor,
			InstantPrintLines: DefaultInstantPrintLines,
		},
	}
}

// NewFlagSet registers every genact flag on a new FlagSet that writes
// parsed values into cfg.  Module names are checked against reg while
// parsing.
func NewFlagSet(name string, cfg *Config, reg Registry) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false

	// ── selection ────────────────────────────────────────────────
	fs.BoolVarP(&cfg.ListModulesAndExit, FlagListModules, "l", false, "List available modules")
	fs.VarP(moduleListValue{p: &cfg.Modules, reg: reg}, FlagModules, "m", "Run only these modules (repeatable)")

	// ── pacing ───────────────────────────────────────────────────
	fs.VarP(speedFactorValue{p: &cfg.SpeedFactor}, FlagSpeedFactor, "s", "Global speed factor")
	fs.VarP(uint32Value{p: &cfg.InstantPrintLines, flag: FlagInstantPrintLines},
		FlagInstantPrintLines, "i", "Instantly print this many lines")

	// ── exit conditions ──────────────────────────────────────────
	fs.Var(durationValue{p: &cfg.ExitAfterTime, flag: FlagExitAfterTime},
		FlagExitAfterTime, "Exit after running for this long (format example: 2h10min)")
	fs.Var(minOneValue{p: &cfg.ExitAfterModules, flag: FlagExitAfterModules},
		FlagExitAfterModules, "Exit after running this many modules")

	// ── output ───────────────────────────────────────────────────
	fs.Var(shellValue{p: &cfg.PrintCompletions}, FlagPrintCompletions, "Generate completion file for a shell")
	fs.BoolVar(&cfg.PrintManpage, FlagPrintManpage, false, "Generate man page")
	fs.CountVarP(&cfg.Verbose, FlagVerbose, "v", "Increase diagnostic verbosity (repeatable)")

	return fs
}

// ArgsResolver resolves a Config from command-line arguments.  It is the
// fail-fast strategy: any bad value aborts resolution with a
// *gerrors.ConfigError and no configuration is returned.
type ArgsResolver struct {
	Name string   // program name used in usage output
	Args []string // arguments without the program name

	// Getenv looks up environment overrides; nil means os.Getenv.
	Getenv func(string) string

	// Flags, when set, is called with the FlagSet before parsing so the
	// caller can register its own flags (help, version) and keep a handle
	// for usage output.
	Flags func(fs *flag.FlagSet)

	// Output receives pflag's own diagnostics; nil discards them.
	Output io.Writer
}

// Policy reports FailFast.
func (r *ArgsResolver) Policy() Policy { return FailFast }

// Resolve implements Resolver.
func (r *ArgsResolver) Resolve(reg Registry) (Resolved, error) {
	cfg, err := r.Config(reg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Config parses, overlays the environment, normalizes and validates.
func (r *ArgsResolver) Config(reg Registry) (*Config, error) {
	name := r.Name
	if name == "" {
		name = "genact"
	}

	cfg := New()
	fs := NewFlagSet(name, cfg, reg)
	fs.Usage = func() {}
	if r.Output != nil {
		fs.SetOutput(r.Output)
	} else {
		fs.SetOutput(io.Discard)
	}
	if r.Flags != nil {
		r.Flags(fs)
	}

	if err := fs.Parse(r.Args); err != nil {
		return nil, flagError(err)
	}
	if fs.NArg() > 0 {
		return nil, &gerrors.ConfigError{
			Field:   "args",
			Value:   fs.Arg(0),
			Message: "genact takes no positional arguments",
			Hint:    "select modules with -m <name>",
			Err:     gerrors.ErrUnexpectedArg,
		}
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := LoadFromEnv(fs, getenv); err != nil {
		return nil, err
	}

	cfg.Modules = defaultModules(cfg.Modules, reg)
	if err := cfg.Validate(reg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagError unwraps pflag's InvalidValueError to the ConfigError our
// values returned.  Other pflag errors (unknown flag, missing argument)
// pass through.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	var ce *gerrors.ConfigError
	if errors.As(err, &ce) {
		return ce
	}
	return fmt.Errorf("%w (use --help for usage)", err)
}
