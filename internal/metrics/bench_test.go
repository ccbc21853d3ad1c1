package metrics

import "testing"

// BenchmarkCollector_ModuleRan measures the overhead of recording a
// completed module run (atomic add plus map update).
func BenchmarkCollector_ModuleRan(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ModuleRan("cargo")
	}
}

// BenchmarkCollector_ModulesRan measures the counter read the exit
// policy performs on every check.
func BenchmarkCollector_ModulesRan(b *testing.B) {
	c := New()
	c.ModuleRan("cargo")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.ModulesRan()
	}
}

// BenchmarkCollector_Snapshot measures the cost of taking a snapshot.
func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.ModuleRan("cargo")
	c.ModuleRan("cc")
	c.LinePrinted()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}

// BenchmarkNilCollector verifies nil-safe no-ops have zero overhead.
func BenchmarkNilCollector(b *testing.B) {
	var c *Collector
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ModuleRan("cargo")
		c.LinePrinted()
		_ = c.Elapsed()
	}
}
