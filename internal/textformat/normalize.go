package textformat

// StripBreaks returns text with every "\n", "\r" and "\r\n" removed.
func StripBreaks(text []rune) []rune {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			out = append(out, text[i])
		}
	}
	return out
}

// ReplaceBreaksWithSpace returns text with every "\n", "\r" and "\r\n"
// replaced by a single space.
func ReplaceBreaksWithSpace(text []rune) []rune {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			out = append(out, ' ')
		case '\n':
			out = append(out, ' ')
		default:
			out = append(out, text[i])
		}
	}
	return out
}
