package textformat

import (
	"fmt"
	"strings"
)

// Alignment controls horizontal placement of each line.
type Alignment uint8

const (
	// AlignLeft places lines against the left edge.
	AlignLeft Alignment = iota
	// AlignRight places lines against the right edge.
	AlignRight
	// AlignCentered centers lines, rounding the left margin down.
	AlignCentered
	// AlignJustified stretches inter-word gaps so lines fill the width.
	AlignJustified
)

// String returns the lower-case name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCentered:
		return "centered"
	case AlignJustified:
		return "justified"
	default:
		return fmt.Sprintf("Alignment(%d)", a)
	}
}

// ParseAlignment converts a name such as "left" or "Centered" to an Alignment.
// "center" and "justify" are accepted as aliases.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "centered", "center":
		return AlignCentered, nil
	case "justified", "justify":
		return AlignJustified, nil
	}
	return AlignLeft, fmt.Errorf("%w: unknown alignment %q", ErrInvalidArgument, s)
}
