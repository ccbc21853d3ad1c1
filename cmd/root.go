// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"genact/config"
	"genact/internal/core"
	"genact/internal/metrics"
	"genact/modules"
	"genact/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X genact/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate genact mode.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Elapsed time for --exit-after-time counts from here.
	collector := metrics.New()
	reg := modules.Registry()

	// ── parse ────────────────────────────────────────────────────
	var (
		fs                    *flag.FlagSet
		showVersion, showHelp bool
	)
	resolver := &config.ArgsResolver{
		Name:   "genact",
		Args:   args,
		Output: stderr,
		Flags: func(f *flag.FlagSet) {
			fs = f
			f.BoolVar(&showVersion, "version", false, "Print version and exit")
			f.BoolVarP(&showHelp, "help", "h", false, "Show this help")
		},
	}

	cfg, err := resolver.Config(reg)
	if err != nil {
		return err
	}

	if showHelp {
		printUsage(stdout, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "genact %s\n", version)
		return nil
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	logger.Debug("config: %+v", cfg.Settings)

	mode, err := core.Build(cfg, &core.Env{
		Stdout:   stdout,
		Logger:   logger,
		Registry: reg,
		Metrics:  collector,
		Flags:    fs,
		Version:  version,
	})
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `genact v%s

A nonsense activity generator.

Usage:
  genact [options]

Options:
`, version)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, `
Environment:
`)
	for _, ev := range config.EnvVars {
		fmt.Fprintf(w, "  %-28s overrides --%s\n", ev.Name, ev.Flag)
	}
	fmt.Fprintf(w, `
Examples:
  genact                                      Run random modules forever
  genact -m cargo -m cc                       Only pretend to compile
  genact -s 5 --exit-after-time 30min         Five times faster, for half an hour
  genact --exit-after-modules 3               Run three modules, then quit
  genact --print-completions zsh > _genact    Install zsh completions
`)
}
