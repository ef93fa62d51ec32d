// Package core provides the value types shared by the text formatter and the
// rendering backends: colors, styles, cells, screen geometry and glyph widths.
// It has no dependencies on the other renderer packages so that both the
// backends and the formatter can import it.
package core
