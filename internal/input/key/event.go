package key

import (
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// Unknown is the keycode reported when no key applies.
var Unknown = Event{}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// ForHotKey returns the normalized keycode for a hotkey rune: the upper-cased
// letter or digit. Anything that is not a letter or digit yields Unknown.
func ForHotKey(r rune) Event {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return Unknown
	}
	return Event{Key: KeyRune, Rune: unicode.ToUpper(r)}
}

// IsUnknown reports whether e carries no key.
func (e Event) IsUnknown() bool {
	return e.Key == KeyNone
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical string representation.
// Examples: "a", "Alt+F", "Enter", "Ctrl+Left".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		// Shift is part of the character itself.
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
