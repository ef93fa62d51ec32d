package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textlayout/internal/input/key"
	"github.com/dshills/textlayout/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	style    tcell.Style
	col, row int

	// last glyph written, so zero-width runes can be combined with it
	lastX, lastY int
	lastMain     rune
	lastComb     []rune
	lastStyle    tcell.Style
	hasLast      bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, style: tcell.StyleDefault}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
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

func (t *Terminal) SetStyle(style core.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.style = convertStyle(style)
}

func (t *Terminal) MoveTo(col, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.col = col
	t.row = row
}

func (t *Terminal) WriteRune(r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w := core.RuneWidth(r)
	if w == 0 {
		if t.hasLast {
			t.lastComb = append(t.lastComb, r)
			t.screen.SetContent(t.lastX, t.lastY, t.lastMain, t.lastComb, t.lastStyle)
		}
		return
	}

	t.screen.SetContent(t.col, t.row, r, nil, t.style)
	t.lastX, t.lastY = t.col, t.row
	t.lastMain, t.lastComb, t.lastStyle = r, nil, t.style
	t.hasLast = true
	t.col += w
}

// Cell returns the cell at the given position as last drawn.
func (t *Terminal) Cell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:      mainc,
		Combining: combc,
		Width:     width,
		Style:     convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	t.hasLast = false
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	// Only key events can be posted
	if event.Type == EventKey {
		tcellEv := tcell.NewEventKey(convertToTcellKey(event.Key.Key), event.Key.Rune, convertToTcellMod(event.Key.Modifiers))
		_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
	}
}

// attrPairs maps each core attribute to its tcell counterpart.
var attrPairs = []struct {
	core  core.Attribute
	tcell tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	var attrs tcell.AttrMask
	for _, p := range attrPairs {
		if s.Attributes.Has(p.core) {
			attrs |= p.tcell
		}
	}
	return style.Attributes(attrs)
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellStyle converts tcell.Style back to our Style. Attributes
// without a core counterpart are dropped.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()
	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	for _, p := range attrPairs {
		if attrs&p.tcell != 0 {
			s.Attributes |= p.core
		}
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}

	// Check if it's a palette color
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}

	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e.Key())
		var r rune
		if k == key.KeyRune {
			r = e.Rune()
		}
		return Event{
			Type: EventKey,
			Key:  key.Event{Key: k, Rune: r, Modifiers: convertMod(e.Modifiers())},
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyRune:
		return key.KeyRune
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(k key.Key) tcell.Key {
	switch k {
	case key.KeyEscape:
		return tcell.KeyEscape
	case key.KeyEnter:
		return tcell.KeyEnter
	case key.KeyTab:
		return tcell.KeyTab
	case key.KeyBackspace:
		return tcell.KeyBackspace2
	case key.KeyDelete:
		return tcell.KeyDelete
	case key.KeyHome:
		return tcell.KeyHome
	case key.KeyEnd:
		return tcell.KeyEnd
	case key.KeyUp:
		return tcell.KeyUp
	case key.KeyDown:
		return tcell.KeyDown
	case key.KeyLeft:
		return tcell.KeyLeft
	case key.KeyRight:
		return tcell.KeyRight
	default:
		return tcell.KeyRune
	}
}

// modPairs maps each key modifier to its tcell counterpart.
var modPairs = []struct {
	key   key.Modifier
	tcell tcell.ModMask
}{
	{key.ModShift, tcell.ModShift},
	{key.ModCtrl, tcell.ModCtrl},
	{key.ModAlt, tcell.ModAlt},
	{key.ModMeta, tcell.ModMeta},
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	for _, p := range modPairs {
		if m&p.tcell != 0 {
			mods |= p.key
		}
	}
	return mods
}

func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var mask tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.key) {
			mask |= p.tcell
		}
	}
	return mask
}
