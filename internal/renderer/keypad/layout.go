package keypad

import (
	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// Thresholds at which the layout adds spacing.
const (
	paddedWidth  = 20
	paddedHeight = 14
	gapWidth     = Columns*3 + Columns - 1
	gapHeight    = Rows * 3
)

// Placed is a button with its screen rectangle.
type Placed struct {
	Button
	Rect core.ScreenRect
}

// Layout holds the screen geometry for one terminal size.
type Layout struct {
	// Bounds is the whole screen.
	Bounds core.ScreenRect

	// Display is the region above the keypad. The value is drawn on its
	// bottom row.
	Display core.ScreenRect

	// Buttons is empty when the screen is too small for the keypad.
	Buttons []Placed
}

// NewLayout computes the layout for a width x height screen. The keypad
// sits at the bottom; the display takes the rest of the height.
func NewLayout(width, height int) Layout {
	l := Layout{Bounds: core.RectFromSize(0, 0, max(height, 0), max(width, 0))}
	if l.Bounds.IsEmpty() {
		return l
	}

	area := l.Bounds
	if width >= paddedWidth && height >= paddedHeight {
		area = core.NewScreenRect(area.Top+1, area.Left+1, area.Bottom-1, area.Right-1)
	}
	l.Display = area

	// A gap row precedes every button row.
	keypadHeight := area.Height() - 1
	gapY := 0
	if keypadHeight >= gapHeight {
		gapY = 1
	}
	buttonHeight := (keypadHeight - Rows*gapY) / Rows

	gapX := 0
	if area.Width() >= gapWidth {
		gapX = 1
	}
	buttonWidth := (area.Width() - (Columns-1)*gapX) / Columns

	if buttonHeight < 1 || buttonWidth < 1 {
		return l
	}

	// Spread leftover columns over the leftmost buttons.
	var lefts, widths [Columns]int
	extra := area.Width() - (Columns-1)*gapX - Columns*buttonWidth
	x := area.Left
	for c := 0; c < Columns; c++ {
		w := buttonWidth
		if c < extra {
			w++
		}
		lefts[c], widths[c] = x, w
		x += w + gapX
	}

	top := area.Bottom - Rows*(buttonHeight+gapY)
	l.Display = core.NewScreenRect(area.Top, area.Left, top, area.Right)

	for _, b := range Buttons() {
		y := top + b.Row*(buttonHeight+gapY) + gapY
		last := b.Col + b.Span - 1
		l.Buttons = append(l.Buttons, Placed{
			Button: b,
			Rect:   core.NewScreenRect(y, lefts[b.Col], y+buttonHeight, lefts[last]+widths[last]),
		})
	}
	return l
}

// HitTest returns the symbol of the button under (x, y).
func (l Layout) HitTest(x, y int) (calc.Symbol, bool) {
	for _, p := range l.Buttons {
		if p.Rect.Contains(x, y) {
			return p.Symbol, true
		}
	}
	return 0, false
}

// Button returns the placement of sym.
func (l Layout) Button(sym calc.Symbol) (Placed, bool) {
	for _, p := range l.Buttons {
		if p.Symbol == sym {
			return p, true
		}
	}
	return Placed{}, false
}
