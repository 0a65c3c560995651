package backend

import (
	"testing"

	"github.com/dshills/keycalc/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(40, 12)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 40 || h != 12 {
		t.Errorf("expected size (40, 12), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(40, 12)
	b.Init()

	cell := core.NewStyledCell('7', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); !got.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndRow(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.Fill(core.NewScreenRect(1, 2, 2, 5), core.NewCell('#'))
	if got := b.Row(1); got != "  ###     " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(0); got != "          " {
		t.Errorf("Row(0) = %q", got)
	}

	b.Clear()
	if got := b.Row(1); got != "          " {
		t.Errorf("Row(1) after Clear = %q", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: '5'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != '5' {
		t.Errorf("unexpected event %+v", ev)
	}

	b.Resize(20, 4)
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 4 {
		t.Errorf("unexpected resize event %+v", ev)
	}

	b.Shutdown()
	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("expected EventClosed after shutdown, got %+v", ev)
	}
}

func TestNullBackendCounters(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()
	b.Show()
	b.Show()
	b.Beep()

	if b.ShowCount() != 2 {
		t.Errorf("ShowCount() = %d, want 2", b.ShowCount())
	}
	if b.BeepCount() != 1 {
		t.Errorf("BeepCount() = %d, want 1", b.BeepCount())
	}
}

func TestModMask(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("unexpected mask %b", m)
	}
}
