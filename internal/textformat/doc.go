// Package textformat lays out a single logical string into display lines of a
// fixed width and height and draws them onto a backend surface.
//
// The pipeline runs strictly top to bottom:
//
//	raw text ─► locate hotkey ─► strip specifier, tag hotkey rune
//	         ─► split on '\n' ─► word wrap ─► clip / justify ─► cache ─► Draw
//
// Text manipulation works on rune indices. Screen placement (Draw, MaxWidth,
// CalcRect) works on terminal column widths as reported by core.RuneWidth.
// WordWrap counts runes, not columns, so lines holding wide glyphs may render
// wider than the requested width.
//
// FormattedText keeps the last computed lines behind a dirty flag; it is not
// safe for concurrent use and is meant to be owned by a single UI goroutine.
package textformat
