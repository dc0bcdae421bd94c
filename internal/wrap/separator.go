package wrap

import (
	"iter"
	"strings"

	"github.com/rivo/uniseg"
)

// Separator selects how a line is cut into words.
type Separator uint8

const (
	// AsciiSpace breaks only at runs of U+0020. Tabs, NBSP and other
	// Unicode spaces are part of the word.
	AsciiSpace Separator = iota
	// UnicodeBreakProperties breaks at the break opportunities of the
	// Unicode line breaking algorithm (UAX #14), e.g. between CJK
	// ideographs or after an em dash. Opportunities right after '-'
	// are left to the WordSplitter.
	UnicodeBreakProperties
)

func (s Separator) String() string {
	switch s {
	case AsciiSpace:
		return "ascii"
	case UnicodeBreakProperties:
		return "unicode"
	default:
		return "unknown"
	}
}

// ParseSeparator accepts the names returned by String.
func ParseSeparator(name string) (Separator, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "ascii-space", "asciispace":
		return AsciiSpace, true
	case "unicode", "unicode-break-properties", "unicodebreakproperties":
		return UnicodeBreakProperties, true
	default:
		return 0, false
	}
}

// FindWords returns the words of line in order. Leading whitespace is
// returned as a word with empty Text. An empty line yields nothing.
func (s Separator) FindWords(line string) iter.Seq[Word] {
	if s == UnicodeBreakProperties {
		return findWordsUnicode(line)
	}
	return findWordsASCII(line)
}

func findWordsASCII(line string) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		start := 0
		inSp := false
		for i := 0; i < len(line); i++ {
			sp := line[i] == ' '
			if inSp && !sp {
				if !yield(NewWord(line[start:i])) {
					return
				}
				start = i
			}
			inSp = sp
		}
		if start < len(line) {
			yield(NewWord(line[start:]))
		}
	}
}

/*
uniseg reports a segment per break opportunity. Segments ending in '-'
are glued to the next one so "foo-bar" reaches the splitter whole.
UAX #14 keeps trailing spaces with the preceding segment (LB7, LB18);
NewWord moves them into Whitespace.
*/
func findWordsUnicode(line string) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		start := 0
		pos := 0
		rest := line
		state := -1
		for len(rest) > 0 {
			var seg string
			seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
			pos += len(seg)
			if len(rest) == 0 {
				break
			}
			if strings.HasSuffix(seg, "-") {
				continue
			}
			if !yield(NewWord(line[start:pos])) {
				return
			}
			start = pos
		}
		if start < len(line) {
			yield(NewWord(line[start:]))
		}
	}
}
