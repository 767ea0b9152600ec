// Package strings holds text helpers shared by the output formatters.
package strings

import (
	"strings"
)

// DefaultCellMaxLen is the widest value a table cell shows before it is cut.
const DefaultCellMaxLen = 80

// minCellLen leaves room for one character plus the ellipsis.
const minCellLen = 4

// SingleLine collapses every run of whitespace, newlines included, into one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateCell returns s on a single line, cut to at most maxLen runes with a
// trailing "..." when it is longer. maxLen values below 4 are raised to 4.
func TruncateCell(s string, maxLen int) string {
	if maxLen < minCellLen {
		maxLen = minCellLen
	}
	s = SingleLine(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
