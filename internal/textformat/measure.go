package textformat

import (
	"github.com/dshills/textlayout/internal/renderer/core"
)

// MaxLines returns how many lines text wraps to at width.
func MaxLines(text string, width int) (int, error) {
	lines, err := Format([]rune(text), width, AlignLeft, true, false)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// MaxWidth returns the widest line, in columns, that text wraps to at width.
func MaxWidth(text string, width int) (int, error) {
	lines, err := Format([]rune(text), width, AlignLeft, true, false)
	if err != nil {
		return 0, err
	}
	widest := 0
	for _, line := range lines {
		widest = max(widest, core.RunesWidth(line))
	}
	return widest, nil
}

// CalcRect returns the rectangle at (x, y) that bounds text without wrapping:
// one row per '\n'-separated line and as many columns as the widest of them.
// '\r' is ignored. Empty text yields an empty rectangle at the origin.
func CalcRect(x, y int, text string) core.ScreenRect {
	if text == "" {
		return core.RectFromSize(y, x, 0, 0)
	}

	widest, cols, rows := 0, 0, 1
	for _, r := range text {
		switch r {
		case '\n':
			rows++
			widest = max(widest, cols)
			cols = 0
		case '\r':
		default:
			cols += core.RuneWidth(r)
		}
	}
	widest = max(widest, cols)
	return core.RectFromSize(y, x, rows, widest)
}
