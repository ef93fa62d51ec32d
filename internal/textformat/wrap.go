package textformat

import "fmt"

// WordWrap breaks text into lines of at most width runes, preferring to break
// at the last space inside each window. A window without a space is split
// mid-word. Line breaks in text are stripped first. Unless
// preserveTrailingSpaces is set, the space a line was broken at is dropped
// instead of starting the next line.
//
// Empty text yields no lines. Widths are counted in runes, not columns.
func WordWrap(text []rune, width int, preserveTrailingSpaces bool) ([]Line, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidArgument, width)
	}
	if len(text) == 0 || width == 0 {
		return nil, nil
	}

	runes := StripBreaks(text)
	var lines []Line
	start := 0
	for end := start + width; end < len(runes); end = start + width {
		for runes[end] != ' ' && end > start {
			end--
		}
		if end == start {
			end = start + width
		}
		lines = append(lines, Line(runes[start:end:end]))
		start = end
		if runes[end] == ' ' && !preserveTrailingSpaces {
			start++
		}
	}
	if start < len(runes) {
		lines = append(lines, Line(runes[start:]))
	}
	return lines, nil
}
