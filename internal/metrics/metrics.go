// Package metrics holds the process-wide runtime state of a genact run:
// when it started and how many modules have completed since.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime state for one process.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	// startTime carries a monotonic clock reading and never changes
	// after construction.
	startTime time.Time

	modulesRan   atomic.Uint64
	linesPrinted atomic.Uint64
	interrupts   atomic.Uint64

	mu           sync.RWMutex
	perModule    map[string]uint64
	lastModule   string
	lastModuleAt time.Time
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return NewAt(time.Now())
}

// NewAt creates a collector that started at start.  Pass a value derived
// from time.Now so elapsed time is measured on the monotonic clock.
func NewAt(start time.Time) *Collector {
	return &Collector{
		startTime: start,
		perModule: make(map[string]uint64),
	}
}

// ── Clock ────────────────────────────────────────────────────────────

// Elapsed returns the time since the collector started.
func (c *Collector) Elapsed() time.Duration {
	if c == nil {
		return 0
	}
	return time.Since(c.startTime)
}

// StartedAt returns the start timestamp.
func (c *Collector) StartedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.startTime
}

// ── Module runs ──────────────────────────────────────────────────────

// ModuleRan records one completed run of the named module.  The run
// counter is incremented before the per-module bookkeeping so a reader
// of ModulesRan never sees an undercount once this call returns.
func (c *Collector) ModuleRan(name string) {
	if c == nil {
		return
	}
	c.modulesRan.Add(1)

	c.mu.Lock()
	c.perModule[name]++
	c.lastModule = name
	c.lastModuleAt = time.Now()
	c.mu.Unlock()
}

// ModulesRan returns the number of completed module runs.
func (c *Collector) ModulesRan() uint64 {
	if c == nil {
		return 0
	}
	return c.modulesRan.Load()
}

// RunsOf returns how often the named module completed.
func (c *Collector) RunsOf(name string) uint64 {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.perModule[name]
}

// ── Output ───────────────────────────────────────────────────────────

// LinePrinted records one line of module output.
func (c *Collector) LinePrinted() {
	if c == nil {
		return
	}
	c.linesPrinted.Add(1)
}

// LinesPrinted returns the total number of output lines.
func (c *Collector) LinesPrinted() uint64 {
	if c == nil {
		return 0
	}
	return c.linesPrinted.Load()
}

// ── Interrupts ───────────────────────────────────────────────────────

// Interrupted records that the run was stopped from outside.
func (c *Collector) Interrupted() {
	if c == nil {
		return
	}
	c.interrupts.Add(1)
}

// ── Snapshot ─────────────────────────────────────────────────────────

// ModuleCount is one entry of Snapshot.PerModule.
type ModuleCount struct {
	Name string `json:"name"`
	Runs uint64 `json:"runs"`
}

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime       string        `json:"uptime"`
	ModulesRan   uint64        `json:"modules_ran"`
	LinesPrinted uint64        `json:"lines_printed"`
	Interrupted  bool          `json:"interrupted,omitempty"`
	PerModule    []ModuleCount `json:"per_module,omitempty"`
	LastModule   string        `json:"last_module,omitempty"`
	LastModuleAt string        `json:"last_module_at,omitempty"`
}

// Snapshot returns a copy of all current metrics.  PerModule is sorted
// by name.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:       time.Since(c.startTime).Truncate(time.Second).String(),
		ModulesRan:   c.modulesRan.Load(),
		LinesPrinted: c.linesPrinted.Load(),
		Interrupted:  c.interrupts.Load() > 0,
		LastModule:   c.lastModule,
	}
	for name, runs := range c.perModule {
		s.PerModule = append(s.PerModule, ModuleCount{Name: name, Runs: runs})
	}
	sort.Slice(s.PerModule, func(i, j int) bool { return s.PerModule[i].Name < s.PerModule[j].Name })
	if !c.lastModuleAt.IsZero() {
		s.LastModuleAt = c.lastModuleAt.Format(time.RFC3339)
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
