package wrap

import "strings"

// Fill wraps text and joins the lines with opts.LineEnding.
func Fill(text string, opts Options) string {
	lines := Wrap(text, opts)
	sep := opts.LineEnding.String()
	n := len(sep) * max(len(lines)-1, 0)
	for _, l := range lines {
		n += len(l.s)
	}
	var b strings.Builder
	b.Grow(n)
	for i, l := range lines {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(l.s)
	}
	return b.String()
}

/*
FillInplace wraps buf to width by overwriting the space that ends each
line with '\n'. Existing '\n' are kept. Words are split on ASCII spaces
only and placed first-fit; nothing is hyphenated or broken, and runs of
several spaces leave the extra spaces before the newline. The length of
buf never changes.
*/
func FillInplace(buf []byte, width int) {
	width = max(width, 0)
	widths := []int{width}
	var cut []int
	off := 0
	for line := range strings.SplitSeq(string(buf), "\n") {
		var words []Word
		for w := range AsciiSpace.FindWords(line) {
			words = append(words, w)
		}
		parts := WrapFirstFit(words, widths)
		pos := off
		for _, ws := range parts[:len(parts)-1] {
			for _, w := range ws {
				pos += len(w.Text) + len(w.Whitespace)
			}
			cut = append(cut, pos-1)
		}
		off += len(line) + 1
	}
	for _, i := range cut {
		buf[i] = '\n'
	}
}
