package keypad

import (
	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// Theme holds the colors used to draw the calculator.
type Theme struct {
	Background core.Color
	Foreground core.Color

	// Primary tints the top row, blended halfway into the background.
	Primary core.Color
	// Secondary fills the rightmost button of each row.
	Secondary core.Color
	// Tertiary marks the operator waiting for its second operand.
	Tertiary core.Color
	// Button fills every other button.
	Button core.Color
	// Label is the button text color.
	Label core.Color
	// Error is the display color while it shows the error sentinel.
	Error core.Color
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.MustColorFromHex("#1c1b1f"),
		Foreground: core.MustColorFromHex("#e6e1e5"),
		Primary:    core.MustColorFromHex("#d0bcff"),
		Secondary:  core.MustColorFromHex("#ccc2dc"),
		Tertiary:   core.MustColorFromHex("#efb8c8"),
		Button:     core.MustColorFromHex("#6750a4"),
		Label:      core.MustColorFromHex("#1c1b1f"),
		Error:      core.MustColorFromHex("#f2b8b5"),
	}
}

// ButtonColor returns the fill color of b for state s.
func (t Theme) ButtonColor(b Button, s calc.State) core.Color {
	if op, ok := s.ActiveOperator(); ok && op == b.Symbol {
		return t.Tertiary
	}
	if b.Last {
		return t.Secondary
	}
	if b.Row == 0 {
		return t.Primary.Blend(t.Background, 0.5)
	}
	return t.Button
}

// ButtonStyle returns the style used for b's label and fill.
func (t Theme) ButtonStyle(b Button, s calc.State) core.Style {
	return core.DefaultStyle().
		WithBackground(t.ButtonColor(b, s)).
		WithForeground(t.Label).
		Bold()
}

// DisplayStyle returns the style of the display value.
func (t Theme) DisplayStyle(s calc.State) core.Style {
	fg := t.Foreground
	if _, typing := s.Entry(); !typing && s.IsError() {
		fg = t.Error
	}
	return core.DefaultStyle().WithBackground(t.Background).WithForeground(fg).Bold()
}
