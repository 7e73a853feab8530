// Package textwidth provides display-width aware helpers over captured
// terminal text: de-styling, column measurement, and column-addressed
// slicing that accounts for double-width glyphs.
package textwidth

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Strip removes styling and control escape sequences from s, leaving the
// plain text content untouched.
func Strip(s string) string { return ansi.Strip(s) }

// StringWidth returns the number of display columns s occupies.
func StringWidth(s string) int { return ansi.StringWidth(s) }

// TruncatePoint returns the byte index of the longest prefix of the plain
// string s that occupies at most cols display columns. The scan walks
// grapheme clusters and measures them with StringWidth, so column sums
// always agree with it; a cluster straddling the boundary is not included.
func TruncatePoint(s string, cols int) int {
	w, i := 0, 0
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
		cw := ansi.StringWidth(cluster)
		if w+cw > cols {
			return i
		}
		w += cw
		i += len(cluster)
	}
	return len(s)
}

// Slice returns the substring of the plain string s covering display
// columns [startCol, endCol). The boolean reports whether startCol landed
// in the middle of a double-width glyph, in which case the returned slice
// begins one column before startCol and the caller should shift any
// highlight accordingly.
func Slice(s string, startCol, endCol int) (string, bool) {
	if endCol <= startCol {
		return "", false
	}
	start := TruncatePoint(s, startCol)
	half := startCol > 0 && TruncatePoint(s, startCol-1) == start

	// The end boundary lands after the glyph covering column endCol-1.
	end := TruncatePoint(s, endCol-1)
	if end < len(s) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[end:], -1)
		end += len(cluster)
	}
	if end < start {
		end = start
	}
	return s[start:end], half
}
