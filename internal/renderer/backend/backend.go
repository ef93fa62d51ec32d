// Package backend provides the drawing surfaces the text formatter renders to.
package backend

import (
	"github.com/dshills/textlayout/internal/input/key"
	"github.com/dshills/textlayout/internal/renderer/core"
)

// Surface is the minimal capability needed to draw text: pick a style, move
// to a cell and emit glyphs. WriteRune advances the surface's own column by
// the glyph's width; zero-width runes combine with the previous glyph.
type Surface interface {
	// SetStyle sets the style used by subsequent WriteRune calls.
	SetStyle(style core.Style)

	// MoveTo positions the next glyph write.
	MoveTo(col, row int)

	// WriteRune emits one glyph at the current position.
	WriteRune(r rune)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend is a full display: a Surface plus lifecycle, flushing and input.
type Backend interface {
	Surface

	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current display dimensions.
	Size() (width, height int)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes drawn cells with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}
