package core

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"genact/config"
	"genact/internal/exitpolicy"
	"genact/internal/metrics"
	"genact/internal/registry"
	"genact/internal/session"
	"genact/util"
)

// RunMode plays randomly chosen modules until the exit policy says
// stop, the context is cancelled, or the output goes away.
type RunMode struct {
	Config   config.Resolved
	Registry *registry.Registry
	Logger   *util.Logger
	Metrics  *metrics.Collector

	// Out defaults to os.Stdout when nil.
	Out io.Writer

	// Rand picks modules; nil means a randomly seeded source.
	Rand *rand.Rand
}

func (m *RunMode) stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// Run loops over modules.  An interrupt is a normal way to stop and is
// not reported as an error.
func (m *RunMode) Run(ctx context.Context) error {
	settings := m.Config.Base()
	if len(settings.Modules) == 0 {
		return fmt.Errorf("run: no modules selected")
	}
	rng := m.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	shouldExit := exitpolicy.New(m.Metrics, m.Metrics).For(m.Config)

	m.Logger.Verbose("modules: %v, speed factor %g", settings.Modules, settings.SpeedFactor)

	for {
		name := settings.Modules[rng.IntN(len(settings.Modules))]
		mod, ok := m.Registry.Get(name)
		if !ok {
			return fmt.Errorf("run: module %q is not registered", name)
		}

		sess := session.New(m.stdout(), settings, m.Logger)
		sess.Rand = rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		sess.Metrics = m.Metrics
		sess.ShouldExit = shouldExit

		m.Logger.Debug("run %s (%s)", name, mod.Signature())
		err := mod.Run(ctx, sess)

		switch {
		case ctx.Err() != nil:
			return m.interrupted()
		case util.IsClosedOutput(err):
			m.Logger.Debug("output closed: %v", err)
			return nil
		case err != nil:
			return fmt.Errorf("module %s: %w", name, err)
		}

		m.Metrics.ModuleRan(name)
		if shouldExit() {
			m.Logger.Verbose("exit condition reached after %d modules in %s",
				m.Metrics.ModulesRan(), config.FormatDuration(m.Metrics.Elapsed().Round(time.Millisecond)))
			m.Logger.Debug("%s", m.Metrics.JSON())
			return nil
		}
	}
}

// interrupted prints the farewell banner.
func (m *RunMode) interrupted() error {
	m.Metrics.Interrupted()
	m.Logger.Debug("%s", m.Metrics.JSON())

	out := m.stdout()
	banner := lipgloss.NewRenderer(out).NewStyle().Bold(true)
	_, err := fmt.Fprintf(out, "\n%s\n", banner.Render("Saving work to disk..."))
	if err != nil && !util.IsClosedOutput(err) {
		return err
	}
	return nil
}
