package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keycalc/internal/calc"
)

// ActionKind identifies what a binding does.
type ActionKind int

const (
	// ActionNone does nothing. Binding a key to "none" unbinds it.
	ActionNone ActionKind = iota
	// ActionPress presses a calculator button.
	ActionPress
	// ActionQuit exits the application.
	ActionQuit
	// ActionRedraw repaints the screen.
	ActionRedraw
)

// Action is the result of a key lookup.
type Action struct {
	Kind   ActionKind
	Symbol calc.Symbol
}

// Press returns an action pressing sym.
func Press(sym calc.Symbol) Action {
	return Action{Kind: ActionPress, Symbol: sym}
}

// Quit is the quit action.
var Quit = Action{Kind: ActionQuit}

// Redraw is the redraw action.
var Redraw = Action{Kind: ActionRedraw}

// ErrUnknownAction is returned for action names that do not parse.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction parses an action name: "quit", "redraw", "none",
// "press:<symbol>" or a bare symbol such as "7" or "×".
func ParseAction(name string) (Action, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "quit":
		return Quit, nil
	case "redraw":
		return Redraw, nil
	case "none":
		return Action{}, nil
	}

	text := strings.TrimPrefix(name, "press:")
	sym, err := calc.ParseSymbol(text)
	if err != nil {
		return Action{}, fmt.Errorf("%w %q: %v", ErrUnknownAction, name, err)
	}
	return Press(sym), nil
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPress:
		return "press:" + a.Symbol.String()
	case ActionQuit:
		return "quit"
	case ActionRedraw:
		return "redraw"
	default:
		return "none"
	}
}

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "7", "Enter", "Ctrl+C", "<Esc>"
	Keys string

	// Action is the action name, see ParseAction.
	Action string

	// Category groups bindings for display purposes.
	Category string
}

// BindingError describes a binding that could not be installed.
type BindingError struct {
	Keys   string
	Action string
	Err    error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %q -> %q: %v", e.Keys, e.Action, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
