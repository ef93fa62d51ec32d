package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.String() != "default" {
		t.Errorf("String() = %q, want default", c.String())
	}
}

func TestColorFromIndex(t *testing.T) {
	c := ColorFromIndex(42)

	if c.R != 42 {
		t.Errorf("expected index 42, got %d", c.R)
	}
	if !c.Indexed {
		t.Error("indexed color should have Indexed true")
	}
	if c.String() != "idx(42)" {
		t.Errorf("String() = %q, want idx(42)", c.String())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorEquals(t *testing.T) {
	c1 := ColorFromRGB(255, 128, 64)
	c2 := ColorFromRGB(255, 128, 64)
	c3 := ColorFromRGB(255, 128, 65)
	c4 := ColorFromIndex(10)

	if !c1.Equals(c2) {
		t.Error("identical RGB colors should be equal")
	}
	if c1.Equals(c3) {
		t.Error("different RGB colors should not be equal")
	}
	if c1.Equals(c4) {
		t.Error("RGB and indexed colors should not be equal")
	}
	if c1.Equals(ColorDefault) {
		t.Error("RGB color should not equal default")
	}
}

func TestAttributeHas(t *testing.T) {
	a := AttrBold | AttrUnderline
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) || !a.Has(AttrBold|AttrUnderline) {
		t.Errorf("expected bold|underline, got %b", a)
	}
	if a.Has(AttrReverse) || a.Has(AttrBold|AttrReverse) {
		t.Errorf("reverse should not be set in %b", a)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorRed).WithBackground(ColorBlue).Bold().Reverse()
	if !s.Foreground.Equals(ColorRed) || !s.Background.Equals(ColorBlue) {
		t.Errorf("unexpected colors: %+v", s)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("unexpected attributes: %b", s.Attributes)
	}
	if s.IsDefault() {
		t.Error("styled value should not be default")
	}
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if s.Equals(s.Underline()) {
		t.Error("styles with different attributes should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'世', 2},
		{'Ａ', 2},
		{'\u0301', 0}, // combining acute accent
		{'\n', 0},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}

	if got := RunesWidth([]rune("a世é")); got != 4 {
		t.Errorf("RunesWidth = %d, want 4", got)
	}
}

func TestCellEquals(t *testing.T) {
	a := NewStyledCell('x', DefaultStyle())
	b := NewStyledCell('x', DefaultStyle())
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}
	b.Combining = []rune{'\u0301'}
	if a.Equals(b) {
		t.Error("cells with different combining runes should differ")
	}
	if !ContinuationCell().IsContinuation() {
		t.Error("ContinuationCell should report IsContinuation")
	}
	if EmptyCell().IsContinuation() {
		t.Error("EmptyCell is not a continuation")
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(2, 3, 4, 10)
	if r.Top != 2 || r.Left != 3 || r.Bottom != 6 || r.Right != 13 {
		t.Errorf("unexpected rect %+v", r)
	}
	w, h := r.Size()
	if w != 10 || h != 4 {
		t.Errorf("Size() = (%d, %d), want (10, 4)", w, h)
	}
	if r.IsEmpty() {
		t.Error("rect should not be empty")
	}
	if !RectFromSize(0, 0, 0, 5).IsEmpty() {
		t.Error("zero-height rect should be empty")
	}
	if NewScreenRect(5, 5, 1, 1).Width() != 0 {
		t.Error("inverted rect should have zero width")
	}
}

func TestScreenRectContains(t *testing.T) {
	r := NewScreenRect(0, 0, 2, 4)
	tests := []struct {
		pos  ScreenPos
		want bool
	}{
		{NewScreenPos(0, 0), true},
		{NewScreenPos(1, 3), true},
		{NewScreenPos(2, 0), false},
		{NewScreenPos(0, 4), false},
		{NewScreenPos(-1, 0), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
