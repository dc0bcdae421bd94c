package wrap

// BreakWords replaces every word that does not fit in maxWidth together
// with its penalty by the runs returned by BreakApart. Words that fit are
// passed through.
func BreakWords(words []Word, maxWidth int) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if w.Width()+w.PenaltyWidth() > maxWidth {
			out = append(out, w.BreakApart(maxWidth)...)
			continue
		}
		out = append(out, w)
	}
	return out
}
