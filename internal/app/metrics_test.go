package app

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/keycalc/internal/calc"
)

func TestMetricsRecordPress(t *testing.T) {
	m := NewMetrics()

	m.RecordPress(calc.Digit(1), calc.Seed("0", "1", true, 0))
	m.RecordPress(calc.Add, calc.Seed("1", "", false, calc.Add))
	m.RecordPress(calc.Equals, calc.Seed(calc.ErrorDisplay, "", false, 0))
	m.RecordPress(calc.Clear, calc.NewState())

	snap := m.Snapshot()
	if snap.Presses != 4 {
		t.Errorf("Presses = %d, want 4", snap.Presses)
	}
	if snap.Commits != 2 {
		t.Errorf("Commits = %d, want 2", snap.Commits)
	}
	if snap.Errors != 1 {
		t.Errorf("Errors = %d, want 1", snap.Errors)
	}
	if got := snap.ErrorRate(); got != 50 {
		t.Errorf("ErrorRate() = %v, want 50", got)
	}
}

func TestMetricsRender(t *testing.T) {
	m := NewMetrics()
	m.RecordRender(2 * time.Millisecond)
	m.RecordRender(4 * time.Millisecond)

	snap := m.Snapshot()
	if snap.RenderCount != 2 {
		t.Errorf("RenderCount = %d, want 2", snap.RenderCount)
	}
	if snap.AvgRenderNs != int64(3*time.Millisecond) {
		t.Errorf("AvgRenderNs = %d, want %d", snap.AvgRenderNs, 3*time.Millisecond)
	}
	if snap.MaxRenderNs != int64(4*time.Millisecond) {
		t.Errorf("MaxRenderNs = %d, want %d", snap.MaxRenderNs, 4*time.Millisecond)
	}
}

func TestMetricsConcurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordEvent()
				m.RecordUnbound()
				m.RecordRender(time.Duration(j) * time.Microsecond)
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.EventCount != 800 || snap.Unbound != 800 || snap.RenderCount != 800 {
		t.Errorf("snapshot = %+v, want 800 of each", snap)
	}
	if snap.MaxRenderNs != int64(99*time.Microsecond) {
		t.Errorf("MaxRenderNs = %d, want %d", snap.MaxRenderNs, 99*time.Microsecond)
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordPress(calc.Equals, calc.NewState())
	m.RecordReload()
	m.Reset()

	snap := m.Snapshot()
	if snap.Presses != 0 || snap.Commits != 0 || snap.Reloads != 0 {
		t.Errorf("snapshot after Reset = %+v", snap)
	}
	if snap.ErrorRate() != 0 {
		t.Errorf("ErrorRate() = %v, want 0", snap.ErrorRate())
	}
}

func TestMetricsSnapshotString(t *testing.T) {
	m := NewMetrics()
	m.RecordPress(calc.Digit(5), calc.NewState())

	s := m.Snapshot().String()
	for _, want := range []string{"presses=1", "commits=0", "renders=0", "reloads=0"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
