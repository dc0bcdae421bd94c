package wrap

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Widths must not depend on the process locale (RUNEWIDTH_EASTASIAN,
// LC_ALL), so ambiguous-width runes are always narrow.
var cond = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// RuneWidth returns the number of terminal columns r occupies: 0 for
// control, combining and zero-width runes, 2 for wide and fullwidth
// runes (CJK, emoji presentation), 1 otherwise.
func RuneWidth(r rune) int {
	return cond.RuneWidth(r)
}

// DisplayWidth returns the number of columns s occupies in a monospace
// terminal. Escape sequences are not special-cased.
func DisplayWidth(s string) int {
	if isASCII(s) {
		w := 0
		for i := 0; i < len(s); i++ {
			if c := s[i]; c >= 0x20 && c != 0x7f {
				w++
			}
		}
		return w
	}
	w := 0
	for _, r := range s {
		w += cond.RuneWidth(r)
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func trimSp(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	return s[:i]
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
