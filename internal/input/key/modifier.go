package key

import "strings"

// Modifier is a set of modifier keys held with a key press.
type Modifier uint8

// Modifier flags.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2 // Option on macOS
	ModMeta  Modifier = 1 << 3 // Cmd on macOS
)

// modNames lists modifiers in the order String prints them.
var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// Has reports whether mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl reports whether Control is held.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasMeta reports whether Meta is held.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// String joins the held modifiers with "+", e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	parts := make([]string, 0, len(modNames))
	for _, n := range modNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}
