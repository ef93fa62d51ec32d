package textformat

import (
	"github.com/dshills/textlayout/internal/renderer/backend"
	"github.com/dshills/textlayout/internal/renderer/core"
)

// Draw renders the lines into bounds on s, one line per row, padding every
// row with spaces across the full width of bounds. The hotkey rune is drawn
// with hot, everything else with normal. Lines that don't fit the height of
// bounds are skipped and glyphs that would cross its right edge are dropped.
//
// Draw also updates CursorPosition from the alignment and the column the
// hotkey starts at within its line. Bounds without area draw nothing.
func (ft *FormattedText) Draw(s backend.Surface, bounds core.ScreenRect, normal, hot core.Style) error {
	if len(ft.text) == 0 {
		return nil
	}
	lines, err := ft.Lines()
	if err != nil {
		return err
	}
	if bounds.IsEmpty() {
		return nil
	}

	s.SetStyle(normal)
	width, height := bounds.Size()
	cursorFixed := false
	for row, line := range lines {
		if row >= height {
			break
		}

		lineWidth, hotCol := ft.measureLine(line)
		offset := max(hotCol, 0)
		var x, cursor int
		switch ft.alignment {
		case AlignRight:
			x = bounds.Right - lineWidth
			cursor = width - lineWidth + offset
		case AlignCentered:
			margin := (width - lineWidth) >> 1 // floor, also for overflowing lines
			x = bounds.Left + margin
			cursor = margin + offset
		default:
			x = bounds.Left
			cursor = offset
		}
		if !cursorFixed {
			ft.cursor = cursor
			cursorFixed = hotCol >= 0
		}

		ft.drawLine(s, line, bounds, bounds.Top+row, x, normal, hot)
	}
	return nil
}

// measureLine returns the column width of line with tags cleared and the
// column its hotkey starts at, or -1.
func (ft *FormattedText) measureLine(line Line) (width, hotCol int) {
	hotCol = -1
	for _, r := range line {
		if IsTagged(r, ft.tagMask) {
			r = Untag(r, ft.tagMask)
			hotCol = width
		}
		width += core.RuneWidth(r)
	}
	return width, hotCol
}

func (ft *FormattedText) drawLine(s backend.Surface, line Line, bounds core.ScreenRect, row, x int, normal, hot core.Style) {
	col := x
	drawn := bounds.Left
	wrote := false
	for _, r := range line {
		tagged := IsTagged(r, ft.tagMask)
		if tagged {
			r = Untag(r, ft.tagMask)
		}
		w := core.RuneWidth(r)

		if w == 0 {
			// Zero-width runes attach to the glyph before them.
			if wrote && col >= bounds.Left {
				s.WriteRune(r)
			}
			continue
		}
		if col < bounds.Left {
			col += w
			continue
		}
		if col+w > bounds.Right {
			break
		}

		for ; drawn < col; drawn++ {
			s.MoveTo(drawn, row)
			s.WriteRune(' ')
		}
		s.MoveTo(col, row)
		if tagged {
			s.SetStyle(hot)
			s.WriteRune(r)
			s.SetStyle(normal)
			if ft.alignment == AlignJustified {
				ft.cursor = col - bounds.Left
			}
		} else {
			s.WriteRune(r)
		}
		wrote = true
		col += w
		drawn = col
	}

	for ; drawn < bounds.Right; drawn++ {
		s.MoveTo(drawn, row)
		s.WriteRune(' ')
	}
}
