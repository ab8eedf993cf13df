// Package strings holds string helpers shared by the client and the CLI.
package strings

import (
	"strings"
)

// Ellipsis marks truncated output.
const Ellipsis = "..."

// minLen is the smallest useful maxLen: one rune plus the ellipsis.
const minLen = len(Ellipsis) + 1

// Truncate folds s onto a single line and cuts it to at most maxLen runes,
// ellipsis included. Runs of whitespace collapse to one space.
//
// maxLen values below 4 are raised to 4.
func Truncate(s string, maxLen int) string {
	if maxLen < minLen {
		maxLen = minLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-len(Ellipsis)]) + Ellipsis
}

// Mask keeps the last n runes of a credential and replaces the rest with
// asterisks, capped at eight. Values of n runes or fewer are fully masked.
func Mask(s string, n int) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	if n < 0 || len(runes) <= n {
		return strings.Repeat("*", min(len(runes), 8))
	}
	hidden := min(len(runes)-n, 8)
	return strings.Repeat("*", hidden) + string(runes[len(runes)-n:])
}
