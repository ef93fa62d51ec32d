package textformat

import (
	"errors"
	"testing"

	"github.com/dshills/textlayout/internal/renderer/core"
)

func TestMaxLines(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{"hello world foo", 5, 3},
		{"hello world foo", 20, 1},
		{"a\n\nb", 5, 3},
		{"", 5, 1},
		{"abc", 0, 1},
	}
	for _, tt := range tests {
		got, err := MaxLines(tt.text, tt.width)
		if err != nil {
			t.Fatalf("MaxLines(%q, %d): %v", tt.text, tt.width, err)
		}
		if got != tt.want {
			t.Errorf("MaxLines(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
		}
	}
	if _, err := MaxLines("abc", -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("MaxLines(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestMaxWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{"hello world foo", 5, 5},
		{"hi\nworld", 10, 5},
		{"世界 ab", 2, 4},
		{"", 5, 0},
	}
	for _, tt := range tests {
		got, err := MaxWidth(tt.text, tt.width)
		if err != nil {
			t.Fatalf("MaxWidth(%q, %d): %v", tt.text, tt.width, err)
		}
		if got != tt.want {
			t.Errorf("MaxWidth(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
		}
	}
	if _, err := MaxWidth("abc", -2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("MaxWidth(-2) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCalcRect(t *testing.T) {
	tests := []struct {
		x, y int
		text string
		want core.ScreenRect
	}{
		{0, 0, "hi\nworld", core.RectFromSize(0, 0, 2, 5)},
		{3, 4, "", core.RectFromSize(4, 3, 0, 0)},
		{0, 0, "a\r\nbc", core.RectFromSize(0, 0, 2, 2)},
		{1, 1, "世界", core.RectFromSize(1, 1, 1, 4)},
		{0, 0, "abc\n", core.RectFromSize(0, 0, 2, 3)},
	}
	for _, tt := range tests {
		got := CalcRect(tt.x, tt.y, tt.text)
		if got != tt.want {
			t.Errorf("CalcRect(%d, %d, %q) = %+v, want %+v", tt.x, tt.y, tt.text, got, tt.want)
		}
	}
}
