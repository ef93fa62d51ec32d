package textformat

import "fmt"

// Line is one display line. It may hold a single hotkey-tagged rune.
type Line []rune

// String returns the line as a string, tags included.
func (l Line) String() string {
	return string(l)
}

// Untagged returns a copy of the line with mask cleared from every rune.
func (l Line) Untagged(mask rune) Line {
	out := make(Line, len(l))
	for i, r := range l {
		if IsTagged(r, mask) {
			r = Untag(r, mask)
		}
		out[i] = r
	}
	return out
}

// Format lays text out into lines of at most width runes.
//
// Without wordWrap the whole text becomes one clipped or justified line with
// its line breaks turned into spaces. With wordWrap every '\n'-separated
// segment is wrapped on its own; a segment ending in '\n' that wraps to
// nothing still contributes an empty line. Empty text or a zero width yield a
// single empty line.
func Format(text []rune, width int, align Alignment, wordWrap, preserveTrailingSpaces bool) ([]Line, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidArgument, width)
	}
	if preserveTrailingSpaces && !wordWrap {
		return nil, fmt.Errorf("%w: preserving trailing spaces requires word wrap", ErrInvalidArgument)
	}
	if len(text) == 0 || width == 0 {
		return []Line{{}}, nil
	}

	if !wordWrap {
		line, err := ClipAndJustify(ReplaceBreaksWithSpace(text), width, align)
		if err != nil {
			return nil, err
		}
		return []Line{line}, nil
	}

	var result []Line
	appendSegment := func(segment []rune, terminated bool) error {
		wrapped, err := WordWrap(segment, width, preserveTrailingSpaces)
		if err != nil {
			return err
		}
		for _, w := range wrapped {
			line, err := ClipAndJustify(w, width, align)
			if err != nil {
				return err
			}
			result = append(result, line)
		}
		if terminated && len(wrapped) == 0 {
			result = append(result, Line{})
		}
		return nil
	}

	start := 0
	for i, r := range text {
		if r != '\n' {
			continue
		}
		if err := appendSegment(text[start:i], true); err != nil {
			return nil, err
		}
		start = i + 1
	}
	if err := appendSegment(text[start:], false); err != nil {
		return nil, err
	}
	return result, nil
}
