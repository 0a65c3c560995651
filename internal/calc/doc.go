// Package calc implements the calculator engine.
//
// The engine is a pure state-transition function:
//
//	next := calc.Reduce(sym, current)
//
// State is an immutable value holding the last finalized result (the
// display), the entry being typed, and the operator awaiting its second
// operand. Every button press is exactly one transition; hosts keep a
// single slot holding the latest State and redraw from State.Visible.
//
// # Commit Step
//
// Pressing an operator or equals resolves the entry and the pending
// operator into a new display value. Arithmetic is chained left to right
// with no precedence:
//
//	5 + 3 × 2 =   → 16
//
// # Errors
//
// Reduce never fails. Division by zero and non-finite results are encoded
// as the display string ErrorDisplay. A later commit reads that display as
// zero, so pressing an operator after an error restarts from zero.
package calc
