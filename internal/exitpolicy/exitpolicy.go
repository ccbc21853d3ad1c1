// Package exitpolicy decides when the run loop should stop.
//
// The decision depends only on the configured Limits and two readings of
// process-wide state: time elapsed since start and the number of completed
// module runs.  Both readings are injected so the policy can be evaluated
// against any clock or counter.
package exitpolicy

import (
	"time"

	"genact/config"
)

// Clock reports the time elapsed since the process started.
type Clock interface {
	Elapsed() time.Duration
}

// RunCounter reports the number of completed module runs.
type RunCounter interface {
	ModulesRan() uint64
}

// Decide reports whether a run with the given limits should stop.  The
// checks are independent; either one is enough:
//
//   - a time limit is set and elapsed exceeds it
//   - a module limit is set and runs has reached it
func Decide(l config.Limits, elapsed time.Duration, runs uint64) bool {
	if l.ExitAfterTime != nil && elapsed > *l.ExitAfterTime {
		return true
	}
	if l.ExitAfterModules != nil && runs >= uint64(*l.ExitAfterModules) {
		return true
	}
	return false
}

// Evaluator applies Decide to live readings.  It is read-only and safe to
// call from any goroutine as long as its Clock and RunCounter are.
type Evaluator struct {
	clock Clock
	runs  RunCounter
}

// New returns an Evaluator reading from clock and runs.
func New(clock Clock, runs RunCounter) *Evaluator {
	return &Evaluator{clock: clock, runs: runs}
}

// ShouldExit reports whether the run should stop now.  A reading is only
// taken when the corresponding limit is configured.
func (e *Evaluator) ShouldExit(l config.Limits) bool {
	if l.ExitAfterTime != nil && e.clock.Elapsed() > *l.ExitAfterTime {
		return true
	}
	if l.ExitAfterModules != nil && e.runs.ModulesRan() >= uint64(*l.ExitAfterModules) {
		return true
	}
	return false
}

// For binds the Evaluator to one configuration and returns a closure
// suitable for polling.
func (e *Evaluator) For(cfg config.Resolved) func() bool {
	limits := cfg.Limits()
	if limits.ExitAfterTime == nil && limits.ExitAfterModules == nil {
		return func() bool { return false }
	}
	return func() bool { return e.ShouldExit(limits) }
}
