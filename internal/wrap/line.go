package wrap

// Line is one output line of Wrap. A borrowed line is a substring of
// the text passed to Wrap; an owned line was built by concatenation.
type Line struct {
	s     string
	owned bool
}

func (l Line) String() string { return l.s }

// Borrowed reports whether the line shares memory with the input.
func (l Line) Borrowed() bool { return !l.owned }

func (l Line) Len() int { return len(l.s) }

// Strings returns the content of lines.
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.s
	}
	return out
}
