package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycalc/internal/renderer/core"
)

func newSimTerminal(t *testing.T) *Terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(30, 10)
	t.Cleanup(term.Shutdown)
	return term
}

func TestTerminalSetGetCell(t *testing.T) {
	term := newSimTerminal(t)

	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(10, 20, 30)).
		WithBackground(core.ColorFromRGB(200, 100, 50)).
		Bold()
	term.SetCell(3, 2, core.NewStyledCell('÷', style))
	term.Show()

	got := term.GetCell(3, 2)
	if got.Rune != '÷' {
		t.Errorf("Rune = %q, want ÷", got.Rune)
	}
	if !got.Style.Foreground.Equals(style.Foreground) {
		t.Errorf("Foreground = %v, want %v", got.Style.Foreground, style.Foreground)
	}
	if !got.Style.Background.Equals(style.Background) {
		t.Errorf("Background = %v, want %v", got.Style.Background, style.Background)
	}
	if !got.Style.Attributes.Has(core.AttrBold) {
		t.Error("expected bold attribute")
	}
}

func TestTerminalFill(t *testing.T) {
	term := newSimTerminal(t)

	term.Fill(core.NewScreenRect(1, 1, 3, 4), core.NewCell('x'))
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if got := term.GetCell(x, y); got.Rune != 'x' {
				t.Errorf("cell (%d,%d) = %q, want x", x, y, got.Rune)
			}
		}
	}
	if got := term.GetCell(0, 0); got.Rune == 'x' {
		t.Error("cell outside rect should not be filled")
	}
}

func TestTerminalPostEventRoundTrip(t *testing.T) {
	term := newSimTerminal(t)

	term.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: '8'})
	ev := pollUntil(term, EventKey)
	if ev.Key != KeyRune || ev.Rune != '8' {
		t.Errorf("unexpected key event %+v", ev)
	}

	term.PostEvent(Event{Type: EventKey, Key: KeyEnter})
	ev = pollUntil(term, EventKey)
	if ev.Key != KeyEnter {
		t.Errorf("Key = %v, want KeyEnter", ev.Key)
	}

	term.PostEvent(Event{Type: EventInterrupt})
	if ev := pollUntil(term, EventInterrupt); ev.Type != EventInterrupt {
		t.Errorf("unexpected event %+v", ev)
	}
}

// pollUntil skips resize events the simulation screen queues on init.
func pollUntil(term *Terminal, want EventType) Event {
	for {
		ev := term.PollEvent()
		if ev.Type == want || ev.Type == EventClosed {
			return ev
		}
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyRune, KeyRune},
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyEscape, KeyEscape},
		{tcell.KeyBackspace, KeyBackspace},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyDelete, KeyDelete},
		{tcell.KeyCtrlC, KeyCtrlC},
		{tcell.KeyF5, KeyNone},
	}
	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.want != KeyNone && tt.want != KeyRune {
			if back := convertKey(convertToTcellKey(tt.want)); back != tt.want {
				t.Errorf("round trip of %v = %v", tt.want, back)
			}
		}
	}
}

func TestConvertMod(t *testing.T) {
	m := convertMod(tcell.ModCtrl | tcell.ModAlt)
	if !m.Has(ModCtrl) || !m.Has(ModAlt) || m.Has(ModShift) {
		t.Errorf("convertMod = %b", m)
	}
	if back := convertToTcellMod(m); back != tcell.ModCtrl|tcell.ModAlt {
		t.Errorf("convertToTcellMod = %v", back)
	}
}
