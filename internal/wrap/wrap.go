package wrap

import (
	"slices"
	"strings"
)

/*
Wrap breaks text into lines no wider than opts.Width columns. text is
first split on opts.LineEnding; each physical line is then wrapped on
its own and the results are concatenated, so existing line breaks are
kept. Output lines carry no terminator.

The first output line gets InitialIndent, every other line gets
SubsequentIndent. Trailing spaces of a line are dropped, leading spaces
are kept. Lines that need neither an indent nor a hyphen are returned
as substrings of text without copying.

Wrap never fails: a word wider than the line is broken apart when
BreakWords is set and overflows the line otherwise.
*/
func Wrap(text string, opts Options) []Line {
	width := max(opts.Width, 0)
	var lines []Line
	for line := range strings.SplitSeq(text, opts.LineEnding.String()) {
		lines = wrapLine(lines, line, width, opts)
	}
	return lines
}

// WrapString wraps text to width with the default options.
func WrapString(text string, width int) []Line {
	return Wrap(text, NewOptions(width))
}

func wrapLine(lines []Line, line string, width int, o Options) []Line {
	if len(line) < width && o.InitialIndent == "" && o.SubsequentIndent == "" {
		return append(lines, Line{s: trimSp(line)})
	}

	first := len(lines) == 0
	sw := satSub(width, DisplayWidth(o.SubsequentIndent))
	widths := []int{sw, sw}
	if first {
		widths[0] = satSub(width, DisplayWidth(o.InitialIndent))
	}

	words := slices.Collect(SplitWords(o.WordSeparator.FindWords(line), o.WordSplitter))
	if o.BreakWords {
		words = BreakWords(words, widths[1])
		if first && o.InitialIndent != "" {
			// lets the first line hold only the indent when the
			// broken word does not fit next to it
			words = slices.Insert(words, 0, Word{})
		}
	}

	var parts [][]Word
	if o.WrapAlgorithm == OptimalFit {
		parts = WrapOptimalFit(words, widths, o.Penalties)
	} else {
		parts = WrapFirstFit(words, widths)
	}

	idx := 0
	for _, ws := range parts {
		indent := o.SubsequentIndent
		if len(lines) == 0 {
			indent = o.InitialIndent
		}
		if len(ws) == 0 {
			lines = append(lines, Line{s: indent, owned: indent != ""})
			continue
		}
		last := ws[len(ws)-1]
		n := -len(last.Whitespace)
		for _, w := range ws {
			n += len(w.Text) + len(w.Whitespace)
		}
		s := line[idx : idx+n]
		idx += n + len(last.Whitespace)

		if indent == "" && last.Penalty == "" {
			lines = append(lines, Line{s: s})
			continue
		}
		var b strings.Builder
		b.Grow(len(indent) + len(s) + len(last.Penalty))
		b.WriteString(indent)
		b.WriteString(s)
		b.WriteString(last.Penalty)
		lines = append(lines, Line{s: b.String(), owned: true})
	}
	return lines
}
