package core

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	// A value of 0 indicates a continuation cell (for wide characters).
	Rune rune

	// Combining holds zero-width runes drawn on top of Rune.
	Combining []rune

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal chars, 2 for wide CJK chars.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{
		Rune:  ' ',
		Width: 1,
		Style: DefaultStyle(),
	}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Style: style,
	}
}

// ContinuationCell returns a continuation cell for wide characters.
func ContinuationCell() Cell {
	return Cell{
		Rune:  0,
		Width: 0,
		Style: DefaultStyle(),
	}
}

// IsContinuation returns true if this is a continuation cell
// (second cell of a wide character).
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		slices.Equal(c.Combining, other.Combining) &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the number of terminal columns r occupies:
// 0 for combining marks and control characters, 2 for wide East Asian
// glyphs and 1 otherwise.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// RunesWidth returns the summed column width of rs.
func RunesWidth(rs []rune) int {
	width := 0
	for _, r := range rs {
		width += RuneWidth(r)
	}
	return width
}
