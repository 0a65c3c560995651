package calc

import (
	"fmt"
	"unicode"
)

// Tape is a recorded sequence of button presses.
type Tape []Symbol

// ParseTape reads one symbol per rune, skipping whitespace.
// "12.5*4=" and "1 2 . 5 × 4 =" parse to the same tape.
func ParseTape(text string) (Tape, error) {
	var t Tape
	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		sym, ok := SymbolFromRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, r, i)
		}
		t = append(t, sym)
	}
	return t, nil
}

// Run reduces every symbol of the tape, starting from s.
func (t Tape) Run(s State) State {
	for _, sym := range t {
		s = Reduce(sym, s)
	}
	return s
}

// Steps returns the state after each press. Steps()[i] is the state
// after t[i].
func (t Tape) Steps(s State) []State {
	steps := make([]State, 0, len(t))
	for _, sym := range t {
		s = Reduce(sym, s)
		steps = append(steps, s)
	}
	return steps
}

func (t Tape) String() string {
	runes := make([]rune, len(t))
	for i, sym := range t {
		runes[i] = rune(sym)
	}
	return string(runes)
}
