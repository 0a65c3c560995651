package keypad

import (
	"strings"
	"testing"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
)

func TestButtons(t *testing.T) {
	buttons := Buttons()
	if len(buttons) != 19 {
		t.Fatalf("len(Buttons()) = %d, want 19", len(buttons))
	}

	tests := []struct {
		sym  calc.Symbol
		row  int
		col  int
		span int
		last bool
	}{
		{calc.Clear, 0, 0, 1, false},
		{calc.Divide, 0, 3, 1, true},
		{'7', 1, 0, 1, false},
		{calc.Add, 3, 3, 1, true},
		{'0', 4, 0, 2, false},
		{calc.Point, 4, 2, 1, false},
		{calc.Equals, 4, 3, 1, true},
	}

	for _, tt := range tests {
		var found bool
		for _, b := range buttons {
			if b.Symbol != tt.sym {
				continue
			}
			found = true
			if b.Row != tt.row || b.Col != tt.col || b.Span != tt.span || b.Last != tt.last {
				t.Errorf("%s = %+v, want row=%d col=%d span=%d last=%v", tt.sym, b, tt.row, tt.col, tt.span, tt.last)
			}
		}
		if !found {
			t.Errorf("%s missing from grid", tt.sym)
		}
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(40, 24)

	if len(l.Buttons) != 19 {
		t.Fatalf("len(Buttons) = %d, want 19", len(l.Buttons))
	}
	if l.Display.IsEmpty() {
		t.Fatal("display is empty")
	}

	eq, _ := l.Button(calc.Equals)
	if eq.Rect.Bottom != 23 || eq.Rect.Right != 39 {
		t.Errorf("= rect = %+v, want bottom 23 right 39", eq.Rect)
	}

	seven, _ := l.Button('7')
	zero, _ := l.Button('0')
	eight, _ := l.Button('8')
	if zero.Rect.Left != seven.Rect.Left || zero.Rect.Right != eight.Rect.Right {
		t.Errorf("0 rect = %+v, want to span 7 %+v and 8 %+v", zero.Rect, seven.Rect, eight.Rect)
	}

	// Buttons never overlap.
	for i, a := range l.Buttons {
		for _, b := range l.Buttons[i+1:] {
			if overlaps(a.Rect, b.Rect) {
				t.Errorf("%s %+v overlaps %s %+v", a.Symbol, a.Rect, b.Symbol, b.Rect)
			}
		}
		if a.Rect.Top < l.Display.Bottom {
			t.Errorf("%s starts at row %d inside display ending at %d", a.Symbol, a.Rect.Top, l.Display.Bottom)
		}
	}
}

func overlaps(a, b core.ScreenRect) bool {
	return a.Left < b.Right && b.Left < a.Right && a.Top < b.Bottom && b.Top < a.Bottom
}

func TestNewLayoutSmall(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		buttons int
	}{
		{"minimum", 4, 6, 19},
		{"too narrow", 3, 24, 0},
		{"too short", 40, 5, 0},
		{"empty", 0, 0, 0},
		{"negative", -1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.w, tt.h)
			if len(l.Buttons) != tt.buttons {
				t.Errorf("len(Buttons) = %d, want %d", len(l.Buttons), tt.buttons)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(40, 24)

	for _, p := range l.Buttons {
		corners := [][2]int{
			{p.Rect.Left, p.Rect.Top},
			{p.Rect.Right - 1, p.Rect.Bottom - 1},
		}
		for _, c := range corners {
			got, ok := l.HitTest(c[0], c[1])
			if !ok || got != p.Symbol {
				t.Errorf("HitTest(%d, %d) = %q, %v; want %q", c[0], c[1], got, ok, p.Symbol)
			}
		}
	}

	if sym, ok := l.HitTest(0, 0); ok {
		t.Errorf("HitTest(0, 0) = %q, want miss", sym)
	}
	if sym, ok := l.HitTest(l.Display.Right-1, l.Display.Bottom-1); ok {
		t.Errorf("HitTest on display = %q, want miss", sym)
	}
}

func TestButtonColor(t *testing.T) {
	theme := DefaultTheme()
	pending := calc.Tape{'5', calc.Add}.Run(calc.NewState())
	typing := calc.Tape{'5', calc.Add, '3'}.Run(calc.NewState())
	byName := make(map[calc.Symbol]Button)
	for _, b := range Buttons() {
		byName[b.Symbol] = b
	}

	tests := []struct {
		name  string
		sym   calc.Symbol
		state calc.State
		want  core.Color
	}{
		{"pending operator", calc.Add, pending, theme.Tertiary},
		{"operator while typing", calc.Add, typing, theme.Secondary},
		{"pending top row operator", calc.Divide, calc.Tape{'8', calc.Divide}.Run(calc.NewState()), theme.Tertiary},
		{"last column", calc.Equals, pending, theme.Secondary},
		{"top row", calc.Clear, pending, theme.Primary.Blend(theme.Background, 0.5)},
		{"paren", calc.OpenParen, calc.NewState(), theme.Primary.Blend(theme.Background, 0.5)},
		{"digit", '7', pending, theme.Button},
		{"zero", '0', calc.NewState(), theme.Button},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.ButtonColor(byName[tt.sym], tt.state)
			if !got.Equals(tt.want) {
				t.Errorf("ButtonColor(%s) = %s, want %s", tt.sym, got, tt.want)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	b := backend.NewNullBackend(40, 24)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	l := NewLayout(40, 24)
	theme := DefaultTheme()
	s := calc.Tape{'1', '2', calc.Multiply, '3'}.Run(calc.NewState())
	Draw(b, l, s, theme)

	row := b.Row(l.Display.Bottom - 1)
	if !strings.HasSuffix(strings.TrimRight(row, " "), "3") {
		t.Errorf("display row = %q, want value 3 right-aligned", row)
	}
	last := b.GetCell(l.Display.Right-1, l.Display.Bottom-1)
	if last.Rune != '3' || last.Style.Attributes&core.AttrBold == 0 {
		t.Errorf("display cell = %+v, want bold 3", last)
	}

	seven, _ := l.Button('7')
	found := false
	for y := seven.Rect.Top; y < seven.Rect.Bottom; y++ {
		for x := seven.Rect.Left; x < seven.Rect.Right; x++ {
			c := b.GetCell(x, y)
			if !c.Style.Background.Equals(theme.Button) {
				t.Fatalf("cell (%d,%d) background = %s, want %s", x, y, c.Style.Background, theme.Button)
			}
			if c.Rune == '7' {
				found = true
			}
		}
	}
	if !found {
		t.Error("label 7 not drawn inside its button")
	}
}

func TestDrawError(t *testing.T) {
	b := backend.NewNullBackend(40, 24)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	l := NewLayout(40, 24)
	theme := DefaultTheme()
	s := calc.Tape{'1', calc.Divide, '0', calc.Equals}.Run(calc.NewState())
	Draw(b, l, s, theme)

	row := strings.TrimRight(b.Row(l.Display.Bottom-1), " ")
	if !strings.HasSuffix(row, calc.ErrorDisplay) {
		t.Errorf("display row = %q, want %q", row, calc.ErrorDisplay)
	}
	c := b.GetCell(l.Display.Right-1, l.Display.Bottom-1)
	if !c.Style.Foreground.Equals(theme.Error) {
		t.Errorf("error foreground = %s, want %s", c.Style.Foreground, theme.Error)
	}
}

func TestDrawDisplayOverflow(t *testing.T) {
	b := backend.NewNullBackend(6, 6)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	l := NewLayout(6, 6)
	s := calc.Tape{'1', '2', '3', '4', '5', '6', '7', '8', '9'}.Run(calc.NewState())
	Draw(b, l, s, DefaultTheme())

	if got := b.Row(0); got != "456789" {
		t.Errorf("display row = %q, want %q", got, "456789")
	}
}
