// Package key provides the keycode value types shared by the terminal backend
// and the text formatter.
//
//   - Key: identifies a keyboard key (special keys or KeyRune for characters)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press; the zero Event (KeyNone) means "unknown"
//
// Hotkeys discovered in label text are represented as rune events carrying the
// upper-cased letter or digit, see ForHotKey.
package key
