package textformat

import (
	"errors"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		preserve bool
		want     []Line
	}{
		{"empty", "", 5, false, nil},
		{"zero width", "abc", 0, false, nil},
		{"fits", "a b c", 10, false, lines("a b c")},
		{"break at spaces", "hello world foo", 5, false, lines("hello", "world", "foo")},
		{"forced mid-word", "abcdefgh", 3, false, lines("abc", "def", "gh")},
		{"exact multiple", "abcdef", 3, false, lines("abc", "def")},
		{"breaks stripped", "ab\ncd", 10, false, lines("abcd")},
		{"back to last space", "ab cd ef", 6, false, lines("ab cd", "ef")},
		{"preserve trailing spaces", "hello world", 5, true, lines("hello", " worl", "d")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WordWrap([]rune(tt.text), tt.width, tt.preserve)
			if err != nil {
				t.Fatalf("WordWrap: %v", err)
			}
			diffLines(t, got, tt.want)
		})
	}
}

func TestWordWrapCountsRunesNotColumns(t *testing.T) {
	got, err := WordWrap([]rune("世界世界"), 2, false)
	if err != nil {
		t.Fatalf("WordWrap: %v", err)
	}
	diffLines(t, got, lines("世界", "世界"))
}

func TestWordWrapNegativeWidth(t *testing.T) {
	for _, text := range []string{"", "abc"} {
		if _, err := WordWrap([]rune(text), -1, false); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("WordWrap(%q, -1) error = %v, want ErrInvalidArgument", text, err)
		}
	}
}
