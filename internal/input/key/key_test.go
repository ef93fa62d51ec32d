package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyLeft, "Left"},
		{KeyRune, "Rune"},
		{Key(200), "Key(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	if KeyNone.IsSpecial() || KeyRune.IsSpecial() {
		t.Error("KeyNone and KeyRune are not special")
	}
	if !KeyEnter.IsSpecial() {
		t.Error("KeyEnter should be special")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{" esc ", KeyEscape},
		{"DEL", KeyDelete},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModAlt | ModShift | ModMeta, "Alt+Shift+Meta"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestForHotKey(t *testing.T) {
	tests := []struct {
		r    rune
		want Event
	}{
		{'f', Event{Key: KeyRune, Rune: 'F'}},
		{'F', Event{Key: KeyRune, Rune: 'F'}},
		{'7', Event{Key: KeyRune, Rune: '7'}},
		{'é', Event{Key: KeyRune, Rune: 'É'}},
		{'_', Unknown},
		{' ', Unknown},
	}
	for _, tt := range tests {
		if got := ForHotKey(tt.r); !got.Equals(tt.want) {
			t.Errorf("ForHotKey(%q) = %+v, want %+v", tt.r, got, tt.want)
		}
	}
	if !ForHotKey('-').IsUnknown() {
		t.Error("punctuation should be unknown")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('F', ModShift), "F"},
		{NewRuneEvent('f', ModAlt), "Alt+f"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyLeft, ModCtrl), "Ctrl+Left"},
		{Unknown, "None"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventIsRune(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsRune() {
		t.Error("rune event should report IsRune")
	}
	if (Event{Key: KeyRune}).IsRune() {
		t.Error("rune event without a rune is not a rune")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsRune() {
		t.Error("special key is not a rune")
	}
}
