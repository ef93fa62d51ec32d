package core

// Attribute is a set of text attribute flags.
type Attribute uint8

// Attributes a label style can carry.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << 0
	AttrUnderline Attribute = 1 << 1
	AttrReverse   Attribute = 1 << 2
)

// Has reports whether every flag of attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr == attr
}

// Style is the color and attribute set a glyph is drawn with.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal's own colors and no attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle returns the default style drawn in fg.
func NewStyle(fg Color) Style {
	return DefaultStyle().WithForeground(fg)
}

// WithForeground returns a copy of s drawn in fg.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy of s on bg.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy of s in bold.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Underline returns a copy of s underlined.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns a copy of s with foreground and background swapped.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Equals compares colors with Color.Equals and attributes bit for bit.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault reports whether s is DefaultStyle.
func (s Style) IsDefault() bool {
	return s.Equals(DefaultStyle())
}
