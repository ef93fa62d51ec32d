package textformat

import "fmt"

// ClipAndJustify truncates text to width runes. Text that already fits is
// returned unchanged, or passed through Justify when align is AlignJustified.
// Padding for the other alignments happens at draw time.
func ClipAndJustify(text []rune, width int, align Alignment) (Line, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidArgument, width)
	}
	if len(text) > width {
		return Line(text[:width:width]), nil
	}
	if align == AlignJustified {
		return Justify(text, width, ' ')
	}
	return Line(text), nil
}

// Justify splits text on single spaces and rejoins the words with
// (width - letters) / (words - 1) copies of spaceChar between each pair.
// The remainder of that division is not distributed, so the result is shorter
// than width unless the gaps divide evenly.
func Justify(text []rune, width int, spaceChar rune) (Line, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidArgument, width)
	}
	if len(text) == 0 {
		return Line{}, nil
	}

	words := splitWords(text)
	textCount := 0
	for _, w := range words {
		textCount += len(w)
	}
	spaces := 0
	if len(words) > 1 {
		spaces = (width - textCount) / (len(words) - 1)
	}

	out := make(Line, 0, max(width, len(text)))
	for i, w := range words {
		out = append(out, w...)
		if i+1 < len(words) {
			for range spaces {
				out = append(out, spaceChar)
			}
		}
	}
	return out, nil
}

// splitWords splits on every single space, so runs of spaces produce empty
// words.
func splitWords(text []rune) [][]rune {
	var words [][]rune
	start := 0
	for i, r := range text {
		if r == ' ' {
			words = append(words, text[start:i])
			start = i + 1
		}
	}
	return append(words, text[start:])
}
