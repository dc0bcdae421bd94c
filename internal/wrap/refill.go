package wrap

import (
	"strings"

	"github.com/unkn0wn-root/textwrap/internal/util"
)

const prefixChars = " -+*>#/"

/*
Unfill reverses Fill as far as possible. It joins the non-empty lines
of text with single spaces after removing their indent, and returns
the Options that would reproduce the layout: the widest line as Width,
the indent of the first line as InitialIndent, the indent shared by
the remaining lines as SubsequentIndent, and the line ending. An
indent is a run of characters from " -+*>#/", which covers comment
markers, quotes and list bullets.

A trailing line ending of text is kept.
*/
func Unfill(text string) (string, Options) {
	opts := NewOptions(0)
	lines := splitLines(text)
	for i, l := range lines {
		opts.Width = max(opts.Width, DisplayWidth(l))
		p := l[:len(l)-len(strings.TrimLeft(l, prefixChars))]
		switch {
		case i == 0:
			opts.InitialIndent = p
		case i == 1:
			opts.SubsequentIndent = p
		default:
			opts.SubsequentIndent = util.CommonPrefix(opts.SubsequentIndent, p)
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	var ending LineEnding
	detected := false
	n := 0
	rest := text
	for len(rest) > 0 {
		line := rest
		var le LineEnding
		has := false
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
			has = true
			le = LF
			if strings.HasSuffix(line, "\r") {
				line = line[:len(line)-1]
				le = CRLF
			}
		} else {
			rest = ""
		}
		if line == "" {
			continue
		}
		if n == 0 {
			b.WriteString(strings.TrimPrefix(line, opts.InitialIndent))
		} else {
			b.WriteByte(' ')
			b.WriteString(strings.TrimPrefix(line, opts.SubsequentIndent))
		}
		n++
		// mixed endings resolve to LF
		if has && (!detected || (ending == CRLF && le == LF)) {
			ending, detected = le, true
		}
	}

	if detected {
		opts.LineEnding = ending
		if strings.HasSuffix(text, opts.LineEnding.String()) {
			b.WriteString(opts.LineEnding.String())
		}
	}
	return b.String(), opts
}

// Refill re-wraps filled text with new options. The indents detected
// by Unfill replace those of opts, and a trailing line ending is
// written back using opts.LineEnding.
func Refill(filled string, opts Options) string {
	text, old := Unfill(filled)
	stripped, had := strings.CutSuffix(text, old.LineEnding.String())
	opts.InitialIndent = old.InitialIndent
	opts.SubsequentIndent = old.SubsequentIndent
	out := Fill(stripped, opts)
	if had {
		out += opts.LineEnding.String()
	}
	return out
}
