package exitpolicy

import (
	"testing"
	"time"

	"genact/config"
	"genact/internal/metrics"
)

// BenchmarkEvaluator_ShouldExit measures one check against a live
// collector with both limits configured.
func BenchmarkEvaluator_ShouldExit(b *testing.B) {
	c := metrics.New()
	e := New(c, c)
	limit := config.Limits{ExitAfterTime: dur(time.Hour), ExitAfterModules: count(1 << 30)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ShouldExit(limit)
	}
}

// BenchmarkEvaluator_NoLimits measures the check used by the browser
// build, which has nothing to read.
func BenchmarkEvaluator_NoLimits(b *testing.B) {
	c := metrics.New()
	check := New(c, c).For(&config.WebConfig{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = check()
	}
}
