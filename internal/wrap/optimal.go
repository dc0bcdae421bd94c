package wrap

// Penalties tunes the cost model of WrapOptimalFit. The zero value is
// not useful; start from DefaultPenalties.
type Penalties struct {
	// NLinePenalty is charged per line, so fewer lines are preferred.
	NLinePenalty float64
	// OverflowPenalty is charged per column a line runs past its width.
	// Overflow only happens when a fragment is wider than the line.
	OverflowPenalty float64
	// ShortLastLineFraction and ShortLastLinePenalty discourage a final
	// line holding a single fragment narrower than
	// width/ShortLastLineFraction.
	ShortLastLineFraction float64
	ShortLastLinePenalty  float64
	// HyphenPenalty is charged for each line ending in a split word.
	HyphenPenalty float64
}

func DefaultPenalties() Penalties {
	return Penalties{
		NLinePenalty:          1000,
		OverflowPenalty:       2500,
		ShortLastLineFraction: 4,
		ShortLastLinePenalty:  25,
		HyphenPenalty:         25,
	}
}

/*
WrapOptimalFit breaks fragments into lines minimising the total cost
over all lines (Knuth and Plass without stretchable glue). Every line
but the last costs the square of its unused width, so the result has
a more even right edge than WrapFirstFit; see Penalties for the rest
of the model.

The dynamic program is solved with OnlineColumnMinima in linear time.
Line widths follow the same convention as WrapFirstFit. Empty input
yields a single empty line.
*/
func WrapOptimalFit[T Fragment](fragments []T, lineWidths []int, p Penalties) [][]T {
	n := len(fragments)
	cum := make([]float64, n+1)
	for i, f := range fragments {
		cum[i+1] = cum[i] + float64(f.Width()+f.WhitespaceWidth())
	}

	nums := lineNumbers{0}
	cost := func(mins []ColumnMinimum, i, j int) float64 {
		lw := float64(lineWidth(lineWidths, nums.at(i, mins)))
		target := max(lw, 1)
		last := fragments[j-1]
		w := cum[j] - cum[i] - float64(last.WhitespaceWidth()) + float64(last.PenaltyWidth())

		c := mins[i].Value + p.NLinePenalty
		switch {
		case w > target:
			c += (w - target) * p.OverflowPenalty
		case j < n:
			gap := target - w
			c += gap * gap
		case i+1 == j && w < target/p.ShortLastLineFraction:
			c += p.ShortLastLinePenalty
		}
		if last.PenaltyWidth() > 0 {
			c += p.HyphenPenalty
		}
		return c
	}

	mins := OnlineColumnMinima(0, n+1, cost)

	var lines [][]T
	for pos := n; ; {
		prev := mins[pos].Row
		lines = append(lines, fragments[prev:pos])
		pos = prev
		if pos == 0 {
			break
		}
	}
	for l, r := 0, len(lines)-1; l < r; l, r = l+1, r-1 {
		lines[l], lines[r] = lines[r], lines[l]
	}
	return lines
}

// lineNumbers memoises the line index at which a break position starts
// a new line. Position 0 starts line 0.
type lineNumbers []int

func (ln *lineNumbers) at(i int, mins []ColumnMinimum) int {
	for len(*ln) <= i {
		pos := len(*ln)
		*ln = append(*ln, (*ln)[mins[pos].Row]+1)
	}
	return (*ln)[i]
}

// LineCost returns the cost WrapOptimalFit assigns to lines, a
// partition of fragments in order.
func LineCost[T Fragment](lines [][]T, lineWidths []int, p Penalties) float64 {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	total := 0.0
	seen := 0
	for k, l := range lines {
		if len(l) == 0 {
			continue
		}
		target := max(float64(lineWidth(lineWidths, k)), 1)
		w := 0
		for _, f := range l {
			w += f.Width() + f.WhitespaceWidth()
		}
		last := l[len(l)-1]
		fw := float64(w - last.WhitespaceWidth() + last.PenaltyWidth())
		seen += len(l)

		c := p.NLinePenalty
		switch {
		case fw > target:
			c += (fw - target) * p.OverflowPenalty
		case seen < n:
			c += (target - fw) * (target - fw)
		case len(l) == 1 && fw < target/p.ShortLastLineFraction:
			c += p.ShortLastLinePenalty
		}
		if last.PenaltyWidth() > 0 {
			c += p.HyphenPenalty
		}
		total += c
	}
	return total
}
