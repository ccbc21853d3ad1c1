// Package retry provides exponential backoff schedules.  Waiting is
// delegated to the caller so pacing rules (speed factor, cancellation)
// apply to retries like to any other delay.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ── Backoff ──────────────────────────────────────────────────────────

// Backoff implements exponential backoff with optional jitter.
type Backoff struct {
	// InitialDelay is the delay before the first retry (default 1s).
	InitialDelay time.Duration
	// MaxDelay caps the backoff duration (default 60s).
	MaxDelay time.Duration
	// Multiplier increases the delay each attempt (default 2.0).
	Multiplier float64
	// MaxAttempts is the total number of tries including the first.
	// Set to 0 for unlimited retries (until context cancelled).
	MaxAttempts int
	// Jitter is the relative randomisation applied to each delay, e.g.
	// 0.25 for ±25%.  Zero disables it.
	Jitter float64
	// Rand drives jitter; nil uses the global source.
	Rand *rand.Rand

	// OnRetry, if set, is called after a failed attempt with the delay
	// before the next one.  A non-nil return aborts the loop.
	OnRetry func(attempt int, wait time.Duration, err error) error
}

// DefaultBackoff returns a reasonable default configuration.
func DefaultBackoff() *Backoff {
	return &Backoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		MaxAttempts:  10,
		Jitter:       0.25,
	}
}

// Delay returns the wait after the given failed attempt (1-based),
// before jitter.
func (b *Backoff) Delay(attempt int) time.Duration {
	initial, maxDelay, multiplier := b.params()
	d := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if d > float64(maxDelay) {
		return maxDelay
	}
	return time.Duration(d)
}

// Do executes fn repeatedly until it succeeds or the retry budget
// (attempts / context) is exhausted, waiting with sleep between tries.
//
// The attempt parameter passed to fn is 1-based.
func (b *Backoff) Do(ctx context.Context, sleep SleepFunc, fn func(attempt int) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}

		// Check attempt budget.
		if b.MaxAttempts > 0 && attempt >= b.MaxAttempts {
			return fmt.Errorf("max retries (%d) exceeded: %w", b.MaxAttempts, err)
		}

		wait := b.jitter(b.Delay(attempt))
		if b.OnRetry != nil {
			if herr := b.OnRetry(attempt, wait, err); herr != nil {
				return herr
			}
		}
		if serr := sleep(ctx, wait); serr != nil {
			return fmt.Errorf("retry cancelled: %w", serr)
		}
	}
}

func (b *Backoff) params() (initial, maxDelay time.Duration, multiplier float64) {
	initial, maxDelay, multiplier = b.InitialDelay, b.MaxDelay, b.Multiplier
	if initial <= 0 {
		initial = time.Second
	}
	if maxDelay <= 0 {
		maxDelay = 60 * time.Second
	}
	if multiplier <= 0 {
		multiplier = 2.0
	}
	return initial, maxDelay, multiplier
}

// jitter randomises d by ±Jitter, never going below a millisecond.
func (b *Backoff) jitter(d time.Duration) time.Duration {
	if b.Jitter <= 0 {
		return d
	}
	f := rand.Float64
	if b.Rand != nil {
		f = b.Rand.Float64
	}
	spread := float64(d) * b.Jitter
	result := float64(d) + (f()*2*spread - spread)
	return time.Duration(math.Max(result, float64(time.Millisecond)))
}
