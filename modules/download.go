package modules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"genact/config"
	"genact/internal/retry"
	"genact/internal/session"
)

// Download shows progress bars for a handful of file downloads.
type Download struct{}

func (Download) Name() string      { return "download" }
func (Download) Signature() string { return "wget -i downloads.txt" }

const downloadTick = 100 * time.Millisecond

// downloadRetry paces reconnects after a simulated connection reset.
var downloadRetry = retry.Backoff{
	InitialDelay: time.Second,
	MaxDelay:     8 * time.Second,
	Multiplier:   2,
	MaxAttempts:  5,
	Jitter:       0.25,
}

var errConnReset = errors.New("connection reset by peer")

func (Download) Run(ctx context.Context, s *session.Session) error {
	for _, name := range pickSome(s, downloadFiles, 2, 5) {
		size := int64(s.Between(1, 800)) << 20
		rate := int64(s.Between(1, 40)) << 20 // bytes per second
		var done int64
		flaky := s.Chance(0.2)

		for done < size {
			if flaky && done > size/3 {
				flaky = false
				if err := reconnect(ctx, s, name); err != nil {
					return err
				}
			}
			done = min(size, done+rate/int64(time.Second/downloadTick))
			eta := time.Duration(float64(size-done) / float64(rate) * float64(time.Second))
			if err := s.Redraw(progressLine(name, done, size, rate, eta, s.Width)); err != nil {
				return err
			}
			if stop, err := pause(ctx, s, downloadTick); stop {
				if err == nil {
					// Leave the bar on its own line.
					err = s.Println("")
				}
				return err
			}
		}
		if err := s.Println(""); err != nil {
			return err
		}
	}
	return nil
}

// reconnect plays out a few failed attempts to resume name followed by
// a successful one.
func reconnect(ctx context.Context, s *session.Session, name string) error {
	failures := s.Between(1, downloadRetry.MaxAttempts-1)

	b := downloadRetry
	b.Rand = s.Rand
	b.OnRetry = func(attempt int, wait time.Duration, err error) error {
		return s.Printf("%s: %v. Retrying in %s (attempt %d/%d).",
			name, err, config.FormatDuration(wait.Round(time.Second)), attempt+1, b.MaxAttempts)
	}

	if err := s.Println(""); err != nil {
		return err
	}
	return b.Do(ctx, s.Sleep, func(attempt int) error {
		if attempt <= failures {
			return errConnReset
		}
		return s.Printf("%s: connected, resuming transfer.", name)
	})
}

// progressLine renders one bar fitted to width columns.
func progressLine(name string, done, size, rate int64, eta time.Duration, width int) string {
	pct := int(done * 100 / size)
	stats := fmt.Sprintf(" %3d%% %8s %8s/s eta %s", pct, humanBytes(done), humanBytes(rate), config.FormatDuration(eta.Round(time.Second)))

	label := name
	if len(label) > 24 {
		label = label[:21] + "..."
	}
	label = fmt.Sprintf("%-24s ", label)

	barWidth := width - len(label) - len(stats) - 3
	if barWidth < 10 {
		return label + strings.TrimLeft(stats, " ")
	}
	filled := barWidth * pct / 100
	bar := strings.Repeat("=", filled)
	if filled < barWidth {
		bar += ">" + strings.Repeat(" ", barWidth-filled-1)
	}
	return label + "[" + bar + "]" + stats
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

var downloadFiles = []string{
	"ubuntu-24.04-desktop-amd64.iso", "node-v20.12.2-linux-x64.tar.xz",
	"go1.22.2.linux-amd64.tar.gz", "llvm-project-18.1.4.src.tar.xz",
	"model-weights-00001-of-00004.safetensors", "postgresql-16.2.tar.bz2",
	"android-sdk-tools.zip", "dataset-2024-q1.parquet",
}
