package backend

import (
	"strings"

	"github.com/dshills/textlayout/internal/renderer/core"
)

// MemoryBackend keeps drawn cells in memory. It is used by tests and by
// callers that want to render to a string.
type MemoryBackend struct {
	width, height int
	cells         [][]core.Cell
	style         core.Style
	col, row      int
	lastCol       int
	lastRow       int
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	events        chan Event
}

// NewMemoryBackend creates a memory backend with the given dimensions.
func NewMemoryBackend(width, height int) *MemoryBackend {
	b := &MemoryBackend{
		width:   width,
		height:  height,
		style:   core.DefaultStyle(),
		lastCol: -1,
		lastRow: -1,
		events:  make(chan Event, 100),
	}
	b.allocate()
	return b
}

func (b *MemoryBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *MemoryBackend) Init() error { return nil }
func (b *MemoryBackend) Shutdown()   {}

func (b *MemoryBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *MemoryBackend) SetStyle(style core.Style) {
	b.style = style
}

func (b *MemoryBackend) MoveTo(col, row int) {
	b.col = col
	b.row = row
}

func (b *MemoryBackend) WriteRune(r rune) {
	w := core.RuneWidth(r)
	if w == 0 {
		if b.inside(b.lastCol, b.lastRow) {
			c := &b.cells[b.lastRow][b.lastCol]
			c.Combining = append(c.Combining, r)
		}
		return
	}
	if b.inside(b.col, b.row) {
		b.cells[b.row][b.col] = core.NewStyledCell(r, b.style)
		b.lastCol, b.lastRow = b.col, b.row
		if w == 2 && b.inside(b.col+1, b.row) {
			b.cells[b.row][b.col+1] = core.ContinuationCell()
		}
	}
	b.col += w
}

func (b *MemoryBackend) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at the given position, or an empty cell outside the
// backend.
func (b *MemoryBackend) Cell(x, y int) core.Cell {
	if b.inside(x, y) {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *MemoryBackend) Clear() {
	b.allocate()
}

func (b *MemoryBackend) Show() {
	b.shows++
}

// Shows returns how many times Show was called.
func (b *MemoryBackend) Shows() int {
	return b.shows
}

func (b *MemoryBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *MemoryBackend) HideCursor() {
	b.cursorVisible = false
}

// CursorPosition returns the current cursor position for testing.
func (b *MemoryBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *MemoryBackend) PollEvent() Event {
	return <-b.events
}

func (b *MemoryBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Row returns row y as text. Continuation cells are skipped and combining
// runes follow their base glyph.
func (b *MemoryBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
		for _, m := range c.Combining {
			sb.WriteRune(m)
		}
	}
	return sb.String()
}

// String returns all rows joined by newlines.
func (b *MemoryBackend) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
