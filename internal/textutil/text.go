// Package textutil holds the small text helpers shared by the extractors.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the default cap applied to text before pattern matching.
const DefaultMaxLength = 256 << 10

// Truncate returns at most maxBytes bytes of s, cut on a rune boundary.
// A non-positive maxBytes disables the cap.
func Truncate(s string, maxBytes int) string {
	if maxBytes <= 0 || len(s) <= maxBytes {
		return s
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// Flatten collapses every whitespace run, newlines included, into one space.
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
