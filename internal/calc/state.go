package calc

import "strings"

// DefaultDisplay is the display of a fresh calculator.
const DefaultDisplay = "0"

// State is the calculator state. It is a value; transitions build a new
// State and never modify the one they were given.
//
// The zero value is equivalent to NewState().
type State struct {
	display  string
	entry    string
	hasEntry bool
	operator Symbol
}

// NewState returns the default state: display "0", no entry, no operator.
func NewState() State {
	return State{display: DefaultDisplay}
}

// Seed builds a state from externally supplied parts. An empty entry with
// hasEntry set is kept as an entry in progress. op must be an operator or
// zero; anything else is dropped.
func Seed(display, entry string, hasEntry bool, op Symbol) State {
	s := State{display: display}
	if hasEntry {
		s.entry = entry
		s.hasEntry = true
	}
	if op.IsOperator() {
		s.operator = op
	}
	return s
}

// Display returns the last finalized result.
func (s State) Display() string {
	if s.display == "" {
		return DefaultDisplay
	}
	return s.display
}

// Entry returns the entry being typed and whether one is in progress.
// An entry can be in progress and still be empty.
func (s State) Entry() (string, bool) {
	return s.entry, s.hasEntry
}

// Operator returns the pending operator, if any.
func (s State) Operator() (Symbol, bool) {
	return s.operator, s.operator != none
}

// ActiveOperator returns the pending operator while no entry is in
// progress. Hosts use it to highlight the operator key that was just
// pressed.
func (s State) ActiveOperator() (Symbol, bool) {
	if s.hasEntry {
		return none, false
	}
	return s.Operator()
}

// Visible returns the text a host should show: the entry if one is in
// progress, otherwise the display.
func (s State) Visible() string {
	if s.hasEntry {
		return s.entry
	}
	return s.Display()
}

// IsError reports whether the display holds the error sentinel.
func (s State) IsError() bool {
	return s.display == ErrorDisplay
}

// Equal reports whether two states are the same. The zero value and
// NewState() compare equal.
func (s State) Equal(other State) bool {
	return s.Display() == other.Display() &&
		s.hasEntry == other.hasEntry &&
		s.entry == other.entry &&
		s.operator == other.operator
}

func (s State) String() string {
	var b strings.Builder
	b.WriteString("display=")
	b.WriteString(s.Display())
	if s.hasEntry {
		b.WriteString(" entry=")
		b.WriteString(s.entry)
	}
	if s.operator != none {
		b.WriteString(" op=")
		b.WriteString(s.operator.String())
	}
	return b.String()
}
