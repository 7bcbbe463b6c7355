// package width measures display cell width of text, defined by
// unicode east asian width. see http://unicode.org/reports/tr11/
package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display cell width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns the display cell width of r.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Center pads s with spaces on both sides so that it occupies
// w display cells. s wider than w is returned unchanged.
func Center(s string, w int) string {
	sw := StringWidth(s)
	if sw >= w {
		return s
	}
	left := (w - sw) / 2
	right := w - sw - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Truncate shortens s to at most w display cells, appending tail
// when shortened.
func Truncate(s string, w int, tail string) string {
	return runewidth.Truncate(s, w, tail)
}
