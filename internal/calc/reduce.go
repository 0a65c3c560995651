package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Reduce returns the state that follows s when sym is pressed.
//
// Clear resets to NewState. Digits and the point extend the entry; a
// second point is ignored. Operators and equals run the commit step.
// Any other symbol, including the parentheses on the keypad, leaves the
// state unchanged.
func Reduce(sym Symbol, s State) State {
	switch {
	case sym == Clear:
		return NewState()
	case sym.IsEntry():
		return appendEntry(sym, s)
	case sym.IsCommit():
		return commit(sym, s)
	default:
		return s
	}
}

func appendEntry(sym Symbol, s State) State {
	if sym == Point && strings.ContainsRune(s.entry, rune(Point)) {
		return s
	}
	s.entry += sym.String()
	s.hasEntry = true
	return s
}

func commit(sym Symbol, s State) State {
	combined, ok := parseDisplay(s.Display()), true
	if s.hasEntry {
		combined, ok = apply(s.operator, combined, parseEntry(s.entry))
	}

	next := State{display: DefaultDisplay}
	if ok {
		next.display = Format(combined)
	} else {
		next.display = ErrorDisplay
	}
	if sym.IsOperator() {
		next.operator = sym
	}
	return next
}

// apply combines the operands with the pending operator. With no pending
// operator the right operand becomes the result. ok is false when the
// result is undefined.
func apply(op Symbol, left, right float64) (result float64, ok bool) {
	switch op {
	case Add:
		return left + right, true
	case Subtract:
		return left - right, true
	case Multiply:
		return left * right, true
	case Divide:
		if right == 0 {
			return 0, false
		}
		return left / right, true
	default:
		return right, true
	}
}

// parseDisplay reads the display as the left operand. The error sentinel,
// and anything else that is not a finite number, reads as zero.
func parseDisplay(text string) float64 {
	if text == ErrorDisplay {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// parseEntry reads the entry as the right operand. A bare point reads as
// zero. Entries too large for a float64 read as infinity so the commit
// reports an error instead of a wrong number.
func parseEntry(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}
