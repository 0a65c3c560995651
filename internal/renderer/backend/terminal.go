package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycalc/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as
// tcell.NewSimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Buttons are clickable
	t.screen.EnableMouse()

	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := rect.Top; y < rect.Bottom && y < height; y++ {
		for x := rect.Left; x < rect.Right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// PollEvent returns nil once the screen is finalized
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	var tcellEv tcell.Event
	switch event.Type {
	case EventKey:
		tcellEv = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		tcellEv = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

var attrs = []struct {
	tcell tcell.AttrMask
	attr  core.Attribute
}{
	{tcell.AttrBold, core.AttrBold},
	{tcell.AttrDim, core.AttrDim},
	{tcell.AttrUnderline, core.AttrUnderline},
	{tcell.AttrReverse, core.AttrReverse},
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertToTcellColor(s.Foreground)).
		Background(convertToTcellColor(s.Background))

	var mask tcell.AttrMask
	for _, e := range attrs {
		if s.Attributes.Has(e.attr) {
			mask |= e.tcell
		}
	}
	return style.Attributes(mask)
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, mask := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
		Attributes: core.AttrNone,
	}
	for _, e := range attrs {
		if mask&e.tcell != 0 {
			s.Attributes |= e.attr
		}
	}
	return s
}

func convertToTcellColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// keys pairs tcell keys with ours. The first entry for a Key is the one
// PostEvent sends.
var keys = []struct {
	tcell tcell.Key
	key   Key
}{
	{tcell.KeyRune, KeyRune},
	{tcell.KeyEscape, KeyEscape},
	{tcell.KeyEnter, KeyEnter},
	{tcell.KeyTab, KeyTab},
	{tcell.KeyBackspace2, KeyBackspace},
	{tcell.KeyBackspace, KeyBackspace},
	{tcell.KeyDelete, KeyDelete},
	{tcell.KeyCtrlC, KeyCtrlC},
	{tcell.KeyCtrlD, KeyCtrlD},
	{tcell.KeyCtrlL, KeyCtrlL},
	{tcell.KeyCtrlQ, KeyCtrlQ},
}

func convertKey(k tcell.Key) Key {
	for _, e := range keys {
		if e.tcell == k {
			return e.key
		}
	}
	return KeyNone
}

func convertToTcellKey(k Key) tcell.Key {
	for _, e := range keys {
		if e.key == k {
			return e.tcell
		}
	}
	return tcell.KeyRune
}

var mods = []struct {
	tcell tcell.ModMask
	mod   ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
	{tcell.ModMeta, ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	for _, e := range mods {
		if m&e.tcell != 0 {
			result |= e.mod
		}
	}
	return result
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	for _, e := range mods {
		if m.Has(e.mod) {
			result |= e.tcell
		}
	}
	return result
}

// convertMouseButton converts tcell button mask to our MouseButton.
func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	default:
		return MouseNone
	}
}
