// Package hyphen provides a wrap.Dictionary backed by TeX hyphenation
// patterns, as distributed in the hyph-utf8 "*.pat.txt" files.
package hyphen

import (
	"io"
	"iter"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
	"github.com/unkn0wn-root/textwrap/internal/wrap"
)

// Minimum number of letters kept on either side of a split.
const (
	minLeft  = 2
	minRight = 2
)

type hyphenator interface {
	// Hyphenate returns the rune positions before which word may be
	// broken.
	Hyphenate(word string) []int
}

// Dictionary finds split points with hyphenation patterns. Words are
// case folded for the pattern language before lookup; punctuation
// around a word is ignored and explicit hyphens are split after. It is
// safe for concurrent use.
type Dictionary struct {
	h   hyphenator
	tag language.Tag
}

var _ wrap.Dictionary = (*Dictionary)(nil)

// New parses patterns from r.
func New(r io.Reader, tag language.Tag) (*Dictionary, error) {
	l, err := hyphenation.New(r)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeDictionary, err, "parse hyphenation patterns")
	}
	return &Dictionary{h: l, tag: tag}, nil
}

// Load reads a pattern file. lang is a BCP 47 tag such as "en-GB"; an
// empty lang means language.Und.
func Load(path, lang string) (*Dictionary, error) {
	tag := language.Und
	if lang != "" {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeUsage, err, "hyphenation language %q", lang)
		}
		tag = t
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "open hyphenation patterns")
	}
	defer func() { _ = f.Close() }()

	d, err := New(f, tag)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeDictionary, err, "load %s", path)
	}
	return d, nil
}

// Language returns the tag used for case folding.
func (d *Dictionary) Language() language.Tag { return d.tag }

// FindSplits implements wrap.Dictionary.
func (d *Dictionary) FindSplits(word string) []int {
	var pts []int
	fold := cases.Lower(d.tag)
	for start, end := range letterRuns(word) {
		pts = append(pts, d.runSplits(fold, word[start:end], start)...)
	}
	pts = append(pts, wrap.HyphenSplitter.SplitPoints(word)...)
	if len(pts) == 0 {
		return nil
	}
	slices.Sort(pts)
	return slices.Compact(pts)
}

func (d *Dictionary) runSplits(fold cases.Caser, run string, off int) []int {
	n := utf8.RuneCountInString(run)
	if n < minLeft+minRight {
		return nil
	}
	low := fold.String(run)
	if utf8.RuneCountInString(low) != n {
		// folding changed the rune count; positions would not map back
		return nil
	}

	byteAt := make([]int, 0, n+1)
	for i := range run {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(run))

	var pts []int
	for _, p := range d.h.Hyphenate(low) {
		if p < minLeft || p > n-minRight {
			continue
		}
		pts = append(pts, off+byteAt[p])
	}
	return pts
}

// letterRuns yields the byte ranges of maximal runs of letters and
// combining marks in word.
func letterRuns(word string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		start := -1
		for i, r := range word {
			in := unicode.IsLetter(r) || (start >= 0 && unicode.Is(unicode.Mn, r))
			switch {
			case in && start < 0:
				start = i
			case !in && start >= 0:
				if !yield(start, i) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(start, len(word))
		}
	}
}
