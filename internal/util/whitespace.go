package util

import (
	"strings"
	"unicode"
)

func TrimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func TrimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// LeadingSpace returns the whitespace s starts with.
func LeadingSpace(s string) string {
	return s[:len(s)-len(TrimLeftSpace(s))]
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return TrimLeftSpace(s) == ""
}

// CommonPrefix returns the longest rune-aligned prefix shared by a and b.
func CommonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	for i > 0 && i < len(a) && !isRuneStart(a[i]) {
		i--
	}
	return a[:i]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
