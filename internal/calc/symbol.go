package calc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Symbol identifies a calculator button.
type Symbol rune

// Button symbols.
const (
	Point      Symbol = '.'
	Add        Symbol = '+'
	Subtract   Symbol = '-'
	Multiply   Symbol = '×'
	Divide     Symbol = '÷'
	Equals     Symbol = '='
	Clear      Symbol = 'C'
	OpenParen  Symbol = '('
	CloseParen Symbol = ')'
)

// none marks an absent operator.
const none Symbol = 0

// ErrUnknownSymbol is returned when text does not name a button.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Digit returns the symbol for digit n (0-9).
// It panics if n is out of range.
func Digit(n int) Symbol {
	if n < 0 || n > 9 {
		panic(fmt.Sprintf("calc: digit %d out of range", n))
	}
	return Symbol('0' + n)
}

// IsDigit reports whether s is one of '0'..'9'.
func (s Symbol) IsDigit() bool {
	return s >= '0' && s <= '9'
}

// IsOperator reports whether s is one of the four binary operators.
func (s Symbol) IsOperator() bool {
	switch s {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// IsEntry reports whether s extends the entry (a digit or the point).
func (s Symbol) IsEntry() bool {
	return s.IsDigit() || s == Point
}

// IsCommit reports whether s triggers the commit step.
func (s Symbol) IsCommit() bool {
	return s.IsOperator() || s == Equals
}

// IsValid reports whether s is a button the engine knows about.
func (s Symbol) IsValid() bool {
	return s.IsEntry() || s.IsCommit() || s == Clear || s == OpenParen || s == CloseParen
}

func (s Symbol) String() string {
	if s == none {
		return ""
	}
	return string(rune(s))
}

// Symbols returns the canonical button set in keypad order.
func Symbols() []Symbol {
	return []Symbol{
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		Point, Add, Subtract, Multiply, Divide, Equals, Clear,
	}
}

// SymbolFromRune maps a rune to a symbol, accepting the ASCII aliases
// '*' and 'x' for multiply, '/' for divide and 'c' for clear.
func SymbolFromRune(r rune) (Symbol, bool) {
	switch r {
	case '*', 'x', 'X':
		return Multiply, true
	case '/':
		return Divide, true
	case 'c':
		return Clear, true
	}
	s := Symbol(r)
	if !s.IsValid() {
		return none, false
	}
	return s, true
}

// ParseSymbol parses a single-button text such as "7", "×" or "*".
func ParseSymbol(text string) (Symbol, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return none, fmt.Errorf("%w: %q", ErrUnknownSymbol, text)
	}
	s, ok := SymbolFromRune(r)
	if !ok {
		return none, fmt.Errorf("%w: %q", ErrUnknownSymbol, text)
	}
	return s, nil
}
