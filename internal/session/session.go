// Package session represents a single module run, binding the output
// writer with pacing settings and the shared runtime state.
//
// Sessions decouple modules from concrete I/O: a module doesn't need to
// know whether it's writing to a terminal or a test buffer, or how fast
// the user wants it to go; it just prints and sleeps through the
// session.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"

	"genact/config"
	"genact/internal/metrics"
	"genact/util"
)

// Session encapsulates the runtime context for one module run.  It is
// not safe for concurrent use; each run gets its own.
type Session struct {
	Out      io.Writer
	Logger   *util.Logger
	Settings config.Settings
	Rand     *rand.Rand
	Metrics  *metrics.Collector

	// ShouldExit is polled by long-running modules between steps.  Nil
	// means never.
	ShouldExit func() bool

	// Width is the output column count used for progress bars.
	Width int

	renderer *lipgloss.Renderer
	lines    uint64
}

// New creates a Session writing to out with the given settings.
func New(out io.Writer, settings config.Settings, logger *util.Logger) *Session {
	if settings.SpeedFactor <= 0 {
		settings.SpeedFactor = config.DefaultSpeedFactor
	}
	return &Session{
		Out:      out,
		Logger:   logger,
		Settings: settings,
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Width:    util.TerminalWidth(out),
		renderer: lipgloss.NewRenderer(out),
	}
}

// ── output ───────────────────────────────────────────────────────────

// Println writes one line of module output.
func (s *Session) Println(line string) error {
	if err := util.WriteLine(s.Out, []byte(line)); err != nil {
		return err
	}
	s.lines++
	s.Metrics.LinePrinted()
	return nil
}

// Printf formats and writes one line of module output.
func (s *Session) Printf(format string, args ...interface{}) error {
	buf := util.GetBuf()
	defer util.PutBuf(buf)
	*buf = fmt.Appendf(*buf, format, args...)
	return s.Println(string(*buf))
}

// Redraw overwrites the current terminal line with line.  It does not
// count as a printed line.
func (s *Session) Redraw(line string) error {
	_, err := io.WriteString(s.Out, "\r"+line)
	return err
}

// Style returns a lipgloss style bound to the session's writer, so
// colours are dropped when the output is not a terminal.
func (s *Session) Style() lipgloss.Style {
	if s.renderer == nil {
		s.renderer = lipgloss.NewRenderer(s.Out)
	}
	return s.renderer.NewStyle()
}

// Lines returns the number of lines printed in this session.
func (s *Session) Lines() uint64 { return s.lines }

// ── pacing ───────────────────────────────────────────────────────────

// Sleep pauses for d divided by the speed factor.  While fewer than
// InstantPrintLines lines have been printed it returns at once.  It
// returns ctx.Err() if ctx is cancelled first.
func (s *Session) Sleep(ctx context.Context, d time.Duration) error {
	if s.lines < uint64(s.Settings.InstantPrintLines) {
		return ctx.Err()
	}
	d = s.Scale(d)
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Scale divides d by the speed factor.
func (s *Session) Scale(d time.Duration) time.Duration {
	return time.Duration(float64(d) / s.Settings.SpeedFactor)
}

// Done reports whether the module should stop early: ctx was cancelled
// or the exit policy says the run is over.
func (s *Session) Done(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return s.ShouldExit != nil && s.ShouldExit()
}

// ── randomness ───────────────────────────────────────────────────────

// Between returns a uniform value in [lo, hi].
func (s *Session) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Rand.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Session) Chance(p float64) bool {
	return s.Rand.Float64() < p
}

// Millis returns a random duration in [lo, hi] milliseconds.
func (s *Session) Millis(lo, hi int) time.Duration {
	return time.Duration(s.Between(lo, hi)) * time.Millisecond
}

// Pick returns a random element of xs.  xs must not be empty.
func Pick[T any](s *Session, xs []T) T {
	return xs[s.Rand.IntN(len(xs))]
}
