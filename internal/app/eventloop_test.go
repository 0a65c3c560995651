package app

import (
	"testing"

	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

func keyEvent(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func TestConvertToKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		want string
	}{
		{"digit", keyRune('7'), "7"},
		{"operator", keyRune('+'), "+"},
		{"enter", keySpecial(backend.KeyEnter), "Enter"},
		{"escape", keySpecial(backend.KeyEscape), "Esc"},
		{"delete", keySpecial(backend.KeyDelete), "Delete"},
		{"ctrl c", keySpecial(backend.KeyCtrlC), "Ctrl+c"},
		{"ctrl l", keySpecial(backend.KeyCtrlL), "Ctrl+l"},
		{"alt rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x', Mod: backend.ModAlt}, "Alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertToKeyEvent(tt.ev).Normalize()
			want, err := key.Parse(tt.want)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.want, err)
			}
			if got != want {
				t.Errorf("convertToKeyEvent() = %v, want %v", got, want)
			}
		})
	}
}

func TestConvertModifiers(t *testing.T) {
	got := convertModifiers(backend.ModShift | backend.ModCtrl | backend.ModAlt | backend.ModMeta)
	for _, mod := range []key.Modifier{key.ModShift, key.ModCtrl, key.ModAlt, key.ModMeta} {
		if !got.Has(mod) {
			t.Errorf("modifiers %v missing %v", got, mod)
		}
	}
	if convertModifiers(backend.ModNone) != key.ModNone {
		t.Error("ModNone should convert to ModNone")
	}
}
