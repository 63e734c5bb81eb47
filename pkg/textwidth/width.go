// Package textwidth measures the display width of text in terminal columns.
//
// Display width is the visual column count of a string, which differs from
// both byte length and code-point count: East-Asian wide characters occupy
// two columns, zero-width combining marks occupy none, and most other
// characters occupy one. The pretty printer uses these measurements for all
// width-budget accounting so that layouts satisfy the width limitation
// visually, not just in code points.
//
// Strings are measured per grapheme cluster, so a base character followed
// by combining marks counts as a single unit and emoji sequences measure as
// the width of the composed glyph.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// String returns the display width of s in columns.
// The measurement is grapheme-cluster aware.
func String(s string) int {
	return uniseg.StringWidth(s)
}

// Rune returns the display width of a single rune in columns.
// Combining marks and other zero-width code points report 0, East-Asian
// wide characters report 2, and everything else reports 1.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}
