package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a normalized Event.
//
// Supported formats:
//   - Single character: "7", "+", "*", "c"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Delete", "Space"
//   - With modifiers: "Ctrl+C", "Alt+Enter", "Ctrl++"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<BS>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Vim-style <...> notation; a bare "<" or ">" is a character
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format; a lone "+" is the plus key
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-c", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "C--" binds Ctrl with the minus key
	keyPart := inner
	modPart := ""
	if strings.HasSuffix(inner, "--") {
		keyPart = "-"
		modPart = strings.TrimSuffix(inner, "--")
	} else if i := strings.LastIndex(inner, "-"); i > 0 {
		keyPart = inner[i+1:]
		modPart = inner[:i]
	}

	var mods Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "-") {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
			mods = mods.With(mod)
		}
	}

	return parseKey(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+C" style notation.
func parseModifierStyle(spec string) (Event, error) {
	keyPart := spec
	modPart := ""
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modPart = strings.TrimSuffix(spec, "++")
	} else if i := strings.LastIndex(spec, "+"); i > 0 {
		keyPart = spec[i+1:]
		modPart = spec[:i]
	}

	var mods Modifier
	for _, p := range strings.Split(modPart, "+") {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(keyPart, mods)
}

// parseKey parses a key name or single character with known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods).Normalize(), nil
	case "lt":
		return NewRuneEvent('<', mods).Normalize(), nil
	case "gt":
		return NewRuneEvent('>', mods).Normalize(), nil
	case "plus":
		return NewRuneEvent('+', mods).Normalize(), nil
	case "minus":
		return NewRuneEvent('-', mods).Normalize(), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods).Normalize(), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
