package keypad

import (
	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// Draw paints the whole calculator. It does not call Show.
func Draw(b backend.Backend, l Layout, s calc.State, t Theme) {
	bg := core.NewStyledCell(' ', core.DefaultStyle().WithBackground(t.Background).WithForeground(t.Foreground))
	b.Fill(l.Bounds, bg)

	drawDisplay(b, l.Display, s.Visible(), t.DisplayStyle(s))

	for _, p := range l.Buttons {
		drawButton(b, p, t.ButtonStyle(p.Button, s))
	}
}

// drawDisplay right-aligns text on the bottom row of rect. Text wider
// than the rect keeps its rightmost columns.
func drawDisplay(b backend.Backend, rect core.ScreenRect, text string, style core.Style) {
	if rect.IsEmpty() {
		return
	}

	runes := []rune(text)
	for len(runes) > 0 && core.StringWidth(string(runes)) > rect.Width() {
		runes = runes[1:]
	}

	y := rect.Bottom - 1
	x := rect.Right - core.StringWidth(string(runes))
	for _, r := range runes {
		cell := core.NewStyledCell(r, style)
		b.SetCell(x, y, cell)
		x += max(cell.Width, 1)
	}
}

// drawButton fills the button and centers its label.
func drawButton(b backend.Backend, p Placed, style core.Style) {
	b.Fill(p.Rect, core.NewStyledCell(' ', style))

	label := p.Symbol.String()
	x := p.Rect.Left + (p.Rect.Width()-core.StringWidth(label))/2
	y := p.Rect.Top + (p.Rect.Height()-1)/2
	for _, r := range label {
		b.SetCell(x, y, core.NewStyledCell(r, style))
		x += max(core.RuneWidth(r), 1)
	}
}
