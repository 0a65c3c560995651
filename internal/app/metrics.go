package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/keycalc/internal/calc"
)

// Metrics tracks calculator usage and render timing. All methods are safe
// for concurrent use.
type Metrics struct {
	presses atomic.Uint64
	commits atomic.Uint64
	errors  atomic.Uint64
	unbound atomic.Uint64

	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	events  atomic.Uint64
	reloads atomic.Uint64

	startTime atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.startTime.Store(time.Now().UnixNano())
	return m
}

// RecordPress records a button press and the state it produced. Commits
// that leave the display showing Error count as errors.
func (m *Metrics) RecordPress(sym calc.Symbol, after calc.State) {
	m.presses.Add(1)
	if !sym.IsCommit() {
		return
	}
	m.commits.Add(1)
	if after.IsError() {
		m.errors.Add(1)
	}
}

// RecordUnbound records a key that matched no binding.
func (m *Metrics) RecordUnbound() {
	m.unbound.Add(1)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records a processed backend event.
func (m *Metrics) RecordEvent() {
	m.events.Add(1)
}

// RecordReload records an applied configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renders := m.renderCount.Load()

	var avg int64
	if renders > 0 {
		avg = m.renderTotalNs.Load() / int64(renders)
	}

	return MetricsSnapshot{
		Uptime:      time.Since(time.Unix(0, m.startTime.Load())),
		Presses:     m.presses.Load(),
		Commits:     m.commits.Load(),
		Errors:      m.errors.Load(),
		Unbound:     m.unbound.Load(),
		RenderCount: renders,
		AvgRenderNs: avg,
		MaxRenderNs: m.renderMaxNs.Load(),
		EventCount:  m.events.Load(),
		Reloads:     m.reloads.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.presses.Store(0)
	m.commits.Store(0)
	m.errors.Store(0)
	m.unbound.Store(0)
	m.renderCount.Store(0)
	m.renderTotalNs.Store(0)
	m.renderMaxNs.Store(0)
	m.events.Store(0)
	m.reloads.Store(0)
	m.startTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	Presses     uint64
	Commits     uint64
	Errors      uint64
	Unbound     uint64
	RenderCount uint64
	AvgRenderNs int64
	MaxRenderNs int64
	EventCount  uint64
	Reloads     uint64
}

// ErrorRate returns the percentage of commits that produced Error.
func (s MetricsSnapshot) ErrorRate() float64 {
	if s.Commits == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Commits) * 100
}

func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s presses=%d commits=%d errors=%d unbound=%d renders=%d avg_render=%s max_render=%s events=%d reloads=%d",
		s.Uptime.Round(time.Millisecond), s.Presses, s.Commits, s.Errors, s.Unbound,
		s.RenderCount, time.Duration(s.AvgRenderNs), time.Duration(s.MaxRenderNs),
		s.EventCount, s.Reloads)
}
