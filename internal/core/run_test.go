package core

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genact/config"
	"genact/internal/metrics"
	"genact/internal/registry"
	"genact/internal/session"
	"genact/util"
)

// stubModule prints one line per run.  With block set it waits for the
// context instead of returning.
type stubModule struct {
	name  string
	block bool
	err   error
	runs  atomic.Int32
}

func (m *stubModule) Name() string      { return m.name }
func (m *stubModule) Signature() string { return "stub --" + m.name }

func (m *stubModule) Run(ctx context.Context, s *session.Session) error {
	m.runs.Add(1)
	if m.err != nil {
		return m.err
	}
	if err := s.Println(m.name); err != nil {
		return err
	}
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func newRunMode(t *testing.T, cfg config.Resolved, out io.Writer, mods ...registry.Module) *RunMode {
	t.Helper()
	reg, err := registry.New(mods...)
	require.NoError(t, err)
	return &RunMode{
		Config:   cfg,
		Registry: reg,
		Out:      out,
		Logger:   util.NewLogger(0),
		Metrics:  metrics.New(),
		Rand:     rand.New(rand.NewPCG(1, 1)),
	}
}

func exitAfter(n uint32, modules ...string) *config.Config {
	cfg := config.New()
	cfg.Modules = modules
	cfg.ExitAfterModules = &n
	return cfg
}

// ── exit conditions ──────────────────────────────────────────────────

func TestRunMode_ExitAfterModules(t *testing.T) {
	var out bytes.Buffer
	a, b := &stubModule{name: "a"}, &stubModule{name: "b"}
	m := newRunMode(t, exitAfter(5, "a", "b"), &out, a, b)

	require.NoError(t, m.Run(context.Background()))

	assert.EqualValues(t, 5, m.Metrics.ModulesRan())
	assert.EqualValues(t, 5, a.runs.Load()+b.runs.Load())
	assert.Equal(t, 5, strings.Count(out.String(), "\n"))
	assert.EqualValues(t, 5, m.Metrics.LinesPrinted())
}

func TestRunMode_OnlySelectedModules(t *testing.T) {
	a, b := &stubModule{name: "a"}, &stubModule{name: "b"}
	m := newRunMode(t, exitAfter(20, "b"), io.Discard, a, b)

	require.NoError(t, m.Run(context.Background()))
	assert.Zero(t, a.runs.Load())
	assert.EqualValues(t, 20, b.runs.Load())
	assert.EqualValues(t, 20, m.Metrics.RunsOf("b"))
}

func TestRunMode_ExitAfterTime(t *testing.T) {
	cfg := config.New()
	cfg.Modules = []string{"a"}
	limit := time.Minute
	cfg.ExitAfterTime = &limit

	m := newRunMode(t, cfg, io.Discard, &stubModule{name: "a"})
	m.Metrics = metrics.NewAt(time.Now().Add(-2 * time.Minute))

	require.NoError(t, m.Run(context.Background()))
	assert.EqualValues(t, 1, m.Metrics.ModulesRan(), "limit already passed; stop after the first run")
}

// ── interruption ─────────────────────────────────────────────────────

func TestRunMode_Interrupted(t *testing.T) {
	var out bytes.Buffer
	web := &config.WebConfig{Settings: config.Settings{Modules: []string{"a"}, SpeedFactor: 1}}
	m := newRunMode(t, web, &out, &stubModule{name: "a", block: true})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, m.Run(ctx), "an interrupt is a clean exit")
	assert.Contains(t, out.String(), "Saving work to disk...")
	assert.True(t, m.Metrics.Snapshot().Interrupted)
	assert.Zero(t, m.Metrics.ModulesRan(), "an interrupted run does not count")
}

// ── failures ─────────────────────────────────────────────────────────

func TestRunMode_ClosedOutput(t *testing.T) {
	m := newRunMode(t, exitAfter(3, "a"), io.Discard, &stubModule{name: "a", err: syscall.EPIPE})
	assert.NoError(t, m.Run(context.Background()))
}

func TestRunMode_ModuleError(t *testing.T) {
	boom := errors.New("boom")
	m := newRunMode(t, exitAfter(3, "a"), io.Discard, &stubModule{name: "a", err: boom})

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "module a")
}

func TestRunMode_UnregisteredModule(t *testing.T) {
	m := newRunMode(t, exitAfter(1, "ghost"), io.Discard, &stubModule{name: "a"})
	assert.Error(t, m.Run(context.Background()))
}

func TestRunMode_NoModules(t *testing.T) {
	m := newRunMode(t, exitAfter(1), io.Discard, &stubModule{name: "a"})
	assert.Error(t, m.Run(context.Background()))
}
