// Package keypad lays out and draws the calculator: a right-aligned
// display above a grid of buttons.
//
//	C  (  )  ÷
//	7  8  9  ×
//	4  5  6  -
//	1  2  3  +
//	0     .  =
//
// The 0 button spans two columns.
package keypad

import "github.com/dshills/keycalc/internal/calc"

// Grid dimensions.
const (
	Rows    = 5
	Columns = 4
)

// Button is one key of the grid.
type Button struct {
	Symbol calc.Symbol

	// Row and Col locate the button's first cell in the grid.
	Row, Col int

	// Span is the number of grid columns the button covers.
	Span int

	// Last is true for the rightmost button of its row.
	Last bool
}

var grid = [Rows][]calc.Symbol{
	{calc.Clear, calc.OpenParen, calc.CloseParen, calc.Divide},
	{'7', '8', '9', calc.Multiply},
	{'4', '5', '6', calc.Subtract},
	{'1', '2', '3', calc.Add},
	{'0', calc.Point, calc.Equals},
}

// Buttons returns the grid in reading order.
func Buttons() []Button {
	var buttons []Button
	for row, syms := range grid {
		col := 0
		for i, sym := range syms {
			span := 1
			if sym == '0' {
				span = 2
			}
			buttons = append(buttons, Button{
				Symbol: sym,
				Row:    row,
				Col:    col,
				Span:   span,
				Last:   i == len(syms)-1,
			})
			col += span
		}
	}
	return buttons
}
