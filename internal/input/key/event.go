package key

import "unicode"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event.
func NewEvent(key Key, r rune, mods Modifier) Event {
	if key != KeyRune {
		r = 0
	}
	return Event{Key: key, Rune: r, Modifiers: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Normalize returns the event in the form used for binding lookup.
// Shift is dropped from character events because the rune already
// carries the case; Ctrl combinations use the lowercase rune.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// String returns the canonical specification of the event, such as
// "7", "Ctrl+C" or "Enter". Parse(e.String()) yields e.Normalize().
func (e Event) String() string {
	var name string
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		} else if e.Modifiers.Has(ModCtrl) {
			name = string(unicode.ToUpper(e.Rune))
		}
	} else {
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
