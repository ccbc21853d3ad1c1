package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"
)

// recordSleep returns a SleepFunc that records waits without sleeping.
func recordSleep(waits *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return ctx.Err()
	}
}

func TestBackoff_SuccessAfterRetries(t *testing.T) {
	b := &Backoff{
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2,
		MaxAttempts:  10,
	}
	var waits []time.Duration
	calls := 0

	err := b.Do(context.Background(), recordSleep(&waits), func(attempt int) error {
		calls++
		if attempt < 4 {
			return fmt.Errorf("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 calls, got %d", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	if fmt.Sprint(waits) != fmt.Sprint(want) {
		t.Errorf("waits = %v, want %v", waits, want)
	}
}

func TestBackoff_ImmediateSuccess(t *testing.T) {
	b := DefaultBackoff()
	var waits []time.Duration

	err := b.Do(context.Background(), recordSleep(&waits), func(_ int) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(waits) != 0 {
		t.Errorf("no waits expected, got %v", waits)
	}
}

func TestBackoff_MaxAttempts(t *testing.T) {
	b := &Backoff{MaxAttempts: 3}
	var waits []time.Duration
	calls := 0
	fail := errors.New("always fails")

	err := b.Do(context.Background(), recordSleep(&waits), func(_ int) error {
		calls++
		return fail
	})

	if !errors.Is(err, fail) {
		t.Fatalf("err = %v, want wrapped %v", err, fail)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(waits) != 2 {
		t.Errorf("expected 2 waits, got %v", waits)
	}
}

func TestBackoff_ContextCancelled(t *testing.T) {
	b := &Backoff{MaxAttempts: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var waits []time.Duration
	err := b.Do(ctx, recordSleep(&waits), func(_ int) error {
		return fmt.Errorf("fail")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBackoff_OnRetry(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	b := &Backoff{
		MaxAttempts: 10,
		OnRetry: func(attempt int, wait time.Duration, err error) error {
			seen = append(seen, attempt)
			if attempt == 2 {
				return stop
			}
			return nil
		},
	}
	var waits []time.Duration

	err := b.Do(context.Background(), recordSleep(&waits), func(_ int) error {
		return fmt.Errorf("fail")
	})

	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want %v", err, stop)
	}
	if fmt.Sprint(seen) != "[1 2]" || len(waits) != 1 {
		t.Errorf("seen = %v, waits = %v", seen, waits)
	}
}

func TestBackoff_DelayCapped(t *testing.T) {
	b := &Backoff{InitialDelay: time.Second, MaxDelay: 5 * time.Second, Multiplier: 3}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, time.Second},
		{2, 3 * time.Second},
		{3, 5 * time.Second},
		{50, 5 * time.Second},
	}
	for _, tt := range tests {
		if got := b.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestBackoff_ZeroConfig(t *testing.T) {
	// Zero-value Backoff should use sensible defaults internally.
	b := &Backoff{}
	if got := b.Delay(1); got != time.Second {
		t.Errorf("Delay(1) = %v, want 1s", got)
	}
	if got := b.Delay(2); got != 2*time.Second {
		t.Errorf("Delay(2) = %v, want 2s", got)
	}
	if got := b.Delay(100); got != 60*time.Second {
		t.Errorf("Delay(100) = %v, want 60s cap", got)
	}
}

func TestJitter_Range(t *testing.T) {
	b := &Backoff{Jitter: 0.25, Rand: rand.New(rand.NewPCG(9, 9))}
	d := 100 * time.Millisecond
	for i := 0; i < 100; i++ {
		j := b.jitter(d)
		lower := time.Duration(float64(d) * 0.74)
		upper := time.Duration(float64(d) * 1.26)
		if j < lower || j > upper {
			t.Errorf("jitter %v out of expected range [%v, %v]", j, lower, upper)
		}
	}

	if got := (&Backoff{}).jitter(d); got != d {
		t.Errorf("zero jitter changed delay to %v", got)
	}
}
