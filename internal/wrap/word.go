package wrap

import "unicode/utf8"

// Word is the unit the line-breaking algorithms operate on. Text and
// Whitespace are adjacent substrings of the line being wrapped; Penalty
// is emitted only when a line ends with this word and never comes from
// the input.
type Word struct {
	Text       string
	Whitespace string
	Penalty    string
	width      int
}

// NewWord builds a Word from s, moving trailing ASCII spaces into
// Whitespace.
func NewWord(s string) Word {
	t := trimSp(s)
	return Word{
		Text:       t,
		Whitespace: s[len(t):],
		width:      DisplayWidth(t),
	}
}

// Width is the cached display width of Text.
func (w Word) Width() int { return w.width }

// WhitespaceWidth is the display width of Whitespace. Whitespace only
// ever holds ASCII spaces, so this is its byte length.
func (w Word) WhitespaceWidth() int { return len(w.Whitespace) }

// PenaltyWidth is the display width of Penalty.
func (w Word) PenaltyWidth() int { return DisplayWidth(w.Penalty) }

func (w Word) String() string { return w.Text }

/*
BreakApart slices w into runs that fit in lineWidth columns. Only the
final run keeps w's whitespace and penalty, so it is cut short enough
to leave room for the penalty. Every run holds at least one rune, so a
lineWidth of 0 still makes progress. Zero-width runes (combining marks)
stay with the run before them.
*/
func (w Word) BreakApart(lineWidth int) []Word {
	pw := w.PenaltyWidth()
	if w.width+pw <= lineWidth {
		return []Word{w}
	}
	var out []Word
	off := 0
	cw := 0
	for i, r := range w.Text {
		rw := RuneWidth(r)
		if cw > 0 && cw+rw > lineWidth {
			out = append(out, Word{Text: w.Text[off:i], width: cw})
			off = i
			cw = 0
		}
		cw += rw
	}
	if cw+pw > lineWidth {
		if cut, head := tailCut(w.Text[off:], cw, satSub(lineWidth, pw)); cut > 0 {
			out = append(out, Word{Text: w.Text[off : off+cut], width: head})
			off += cut
			cw -= head
		}
	}
	return append(out, Word{
		Text:       w.Text[off:],
		Whitespace: w.Whitespace,
		Penalty:    w.Penalty,
		width:      cw,
	})
}

// tailCut returns the first cluster boundary in s after which at most
// limit columns remain, along with the width before it. s is width
// columns wide. The tail always keeps the last cluster.
func tailCut(s string, width, limit int) (cut, head int) {
	last, lastHead := 0, 0
	hw := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if i > 0 && rw > 0 {
			if width-hw <= limit {
				return i, hw
			}
			last, lastHead = i, hw
		}
		hw += rw
	}
	return last, lastHead
}

func runeBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}
