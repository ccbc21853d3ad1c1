package core

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"genact/config"
	"genact/internal/metrics"
	"genact/internal/registry"
	"genact/util"
)

// Env carries the process-level dependencies every mode may need.
type Env struct {
	Stdout   io.Writer
	Logger   *util.Logger
	Registry *registry.Registry
	Metrics  *metrics.Collector

	// Flags is the parsed FlagSet, used to generate completions and the
	// man page.
	Flags   *flag.FlagSet
	Version string
}

// Build constructs the appropriate Mode from the given configuration.
// The output-only flags win over running modules, in the order
// completions, man page, module list.
func Build(cfg *config.Config, env *Env) (Mode, error) {
	if env == nil || env.Registry == nil {
		return nil, fmt.Errorf("core: no module registry")
	}
	out := env.Stdout
	if out == nil {
		out = os.Stdout
	}

	switch {
	case cfg.PrintCompletions != "":
		return buildCompletions(cfg, env, out)
	case cfg.PrintManpage:
		return buildManpage(env, out)
	case cfg.ListModulesAndExit:
		return &ListMode{Registry: env.Registry, Out: out}, nil
	default:
		return buildRun(cfg, env, out), nil
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildCompletions(cfg *config.Config, env *Env, out io.Writer) (Mode, error) {
	if env.Flags == nil {
		return nil, fmt.Errorf("core: completions need the flag set")
	}
	return &CompletionMode{
		Shell:    cfg.PrintCompletions,
		Flags:    env.Flags,
		Registry: env.Registry,
		Out:      out,
	}, nil
}

func buildManpage(env *Env, out io.Writer) (Mode, error) {
	if env.Flags == nil {
		return nil, fmt.Errorf("core: man page needs the flag set")
	}
	return &ManpageMode{
		Flags:    env.Flags,
		Registry: env.Registry,
		Version:  env.Version,
		Out:      out,
	}, nil
}

func buildRun(cfg *config.Config, env *Env, out io.Writer) *RunMode {
	logger := env.Logger
	if logger == nil {
		logger = util.NewLogger(cfg.Verbose)
	}
	m := env.Metrics
	if m == nil {
		m = metrics.New()
	}
	return &RunMode{
		Config:   cfg,
		Registry: env.Registry,
		Out:      out,
		Logger:   logger,
		Metrics:  m,
	}
}
