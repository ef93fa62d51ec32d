package textformat

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/textlayout/internal/input/key"
)

const (
	// NoHotKeySpecifier disables hotkey detection when used as the specifier.
	NoHotKeySpecifier rune = 0xFFFF

	// DefaultHotKeyTagMask is OR'd into the hotkey rune while it travels
	// through wrapping and justification. It sits in the supplementary
	// private use plane, so tagged ASCII letters and digits stay valid runes.
	DefaultHotKeyTagMask rune = 0x100000
)

// FindHotKey scans text for the rune following the hotkey specifier. When
// none is found and firstUpperCase is set, the first upper-case letter is
// used instead. Replacement characters are skipped.
//
// pos is an index into text with the specifier removed: for a specifier
// match it is the specifier's own index. The returned keycode is the
// upper-cased letter or digit; anything else is reported as not found.
//
// Replacement characters between the specifier and the hotkey are skipped
// when choosing the keycode but still count for pos, so in "x_\uFFFDAb" the
// keycode is 'A' while pos points at the replacement character. Tagging that
// position changes nothing and the hotkey is reported without being drawn
// highlighted.
func FindHotKey(text []rune, specifier rune, firstUpperCase bool) (pos int, hotKey key.Event, ok bool) {
	if len(text) == 0 || specifier == NoHotKeySpecifier {
		return -1, key.Unknown, false
	}

	pos = -1
	var hot rune
	found := false
	for i, c := range text {
		if c == utf8.RuneError {
			continue
		}
		if c == specifier {
			pos = i
			continue
		}
		if pos > -1 {
			hot = c
			found = true
			break
		}
	}

	if !found && firstUpperCase {
		for i, c := range text {
			if c != utf8.RuneError && unicode.IsUpper(c) {
				hot = c
				pos = i
				found = true
				break
			}
		}
	}

	if !found {
		return -1, key.Unknown, false
	}
	hotKey = key.ForHotKey(hot)
	if hotKey.IsUnknown() {
		return -1, key.Unknown, false
	}
	return pos, hotKey, true
}

// RemoveHotKeySpecifier returns a copy of text without the specifier at pos.
// Text is returned as is when pos does not hold the specifier.
func RemoveHotKeySpecifier(text []rune, pos int, specifier rune) []rune {
	if len(text) == 0 || pos < 0 || pos >= len(text) || text[pos] != specifier {
		return text
	}
	out := make([]rune, 0, len(text)-1)
	out = append(out, text[:pos]...)
	return append(out, text[pos+1:]...)
}

// ReplaceHotKeyWithTag returns a copy of text with the letter or digit at pos
// OR'd with mask. Other runes are left untagged.
func ReplaceHotKeyWithTag(text []rune, pos int, mask rune) []rune {
	out := make([]rune, len(text))
	copy(out, text)
	if pos < 0 || pos >= len(out) {
		return out
	}
	if r := out[pos]; unicode.IsLetter(r) || unicode.IsDigit(r) {
		out[pos] = r | mask
	}
	return out
}

// IsTagged reports whether r carries every bit of mask.
func IsTagged(r, mask rune) bool {
	return mask != 0 && r&mask == mask
}

// Untag clears mask from r.
func Untag(r, mask rune) rune {
	return r &^ mask
}
