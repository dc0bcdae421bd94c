package wrap

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dictionary finds hyphenation points in a single word. FindSplits
// returns byte offsets into word at which it may be split; an unknown
// word yields nil. Offsets must be strictly increasing, lie strictly
// inside the word and fall on rune boundaries.
type Dictionary interface {
	FindSplits(word string) []int
}

type splitKind uint8

const (
	splitNone splitKind = iota
	splitHyphen
	splitDict
)

// WordSplitter decides where words may be split across lines.
type WordSplitter struct {
	kind splitKind
	dict Dictionary
}

var (
	// NoHyphenation never splits words.
	NoHyphenation = WordSplitter{kind: splitNone}
	// HyphenSplitter splits after hyphens that sit between two
	// alphanumeric characters, as in "well-known".
	HyphenSplitter = WordSplitter{kind: splitHyphen}
)

// Hyphenation splits words at the points d reports.
func Hyphenation(d Dictionary) WordSplitter {
	if d == nil {
		return NoHyphenation
	}
	return WordSplitter{kind: splitDict, dict: d}
}

func (s WordSplitter) String() string {
	switch s.kind {
	case splitNone:
		return "none"
	case splitHyphen:
		return "hyphen"
	case splitDict:
		return "dictionary"
	default:
		return "unknown"
	}
}

// Dictionary returns the dictionary behind a Hyphenation splitter.
func (s WordSplitter) Dictionary() (Dictionary, bool) {
	return s.dict, s.kind == splitDict
}

// SplitPoints returns the byte offsets at which word may be split.
func (s WordSplitter) SplitPoints(word string) []int {
	switch s.kind {
	case splitHyphen:
		return hyphenPoints(word)
	case splitDict:
		pts := s.dict.FindSplits(word)
		checkPoints(word, pts)
		return pts
	default:
		return nil
	}
}

func hyphenPoints(word string) []int {
	var pts []int
	prev := utf8.RuneError
	for i, r := range word {
		if r == '-' && i > 0 && alnum(prev) {
			if nx, _ := utf8.DecodeRuneInString(word[i+1:]); alnum(nx) {
				pts = append(pts, i+1)
			}
		}
		prev = r
	}
	return pts
}

func alnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func checkPoints(word string, pts []int) {
	last := 0
	for _, p := range pts {
		if p <= last || p >= len(word) || !runeBoundary(word, p) {
			panic(fmt.Sprintf("wrap: dictionary returned invalid split %d in %q (splits %v)", p, word, pts))
		}
		last = p
	}
}

// SplitWords splits every word at the points s reports. Each sub-word
// but the last gets the penalty "-" unless it already ends in '-'; the
// last keeps the word's whitespace and penalty.
func SplitWords(words iter.Seq[Word], s WordSplitter) iter.Seq[Word] {
	if s.kind == splitNone {
		return words
	}
	return func(yield func(Word) bool) {
		for w := range words {
			pts := s.SplitPoints(w.Text)
			if len(pts) == 0 {
				if !yield(w) {
					return
				}
				continue
			}
			off := 0
			for _, p := range pts {
				t := w.Text[off:p]
				pen := "-"
				if strings.HasSuffix(t, "-") {
					pen = ""
				}
				if !yield(Word{Text: t, Penalty: pen, width: DisplayWidth(t)}) {
					return
				}
				off = p
			}
			t := w.Text[off:]
			if !yield(Word{
				Text:       t,
				Whitespace: w.Whitespace,
				Penalty:    w.Penalty,
				width:      DisplayWidth(t),
			}) {
				return
			}
		}
	}
}
