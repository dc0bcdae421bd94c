package wrap

// Fragment is anything the line-breaking algorithms can place: a box of
// Width columns followed by WhitespaceWidth columns of glue, or by
// PenaltyWidth columns when a line ends right after it.
type Fragment interface {
	Width() int
	WhitespaceWidth() int
	PenaltyWidth() int
}

func lineWidth(widths []int, line int) int {
	if len(widths) == 0 {
		return 0
	}
	return widths[min(line, len(widths)-1)]
}

/*
WrapFirstFit fills each line with as many fragments as fit before
moving on. A fragment is moved to the next line when the current line
already has content and the fragment plus its penalty would overflow
it, so a fragment wider than the line sits alone on its own line.

lineWidths[i] is the budget of line i; the last entry is reused for
every line after it. The result slices share fragments' backing array.
*/
func WrapFirstFit[T Fragment](fragments []T, lineWidths []int) [][]T {
	var lines [][]T
	start := 0
	w := 0
	for i, f := range fragments {
		lw := lineWidth(lineWidths, len(lines))
		if w+f.Width()+f.PenaltyWidth() > lw && i > start {
			lines = append(lines, fragments[start:i])
			start = i
			w = 0
		}
		w += f.Width() + f.WhitespaceWidth()
	}
	return append(lines, fragments[start:])
}
