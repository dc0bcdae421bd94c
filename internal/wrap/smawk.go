package wrap

// ColumnMinimum is the row holding the smallest value of a column, and
// that value.
type ColumnMinimum struct {
	Row   int
	Value float64
}

/*
OnlineColumnMinima computes the column minima of an upper-triangular
size x size matrix whose entries may depend on the minima of earlier
columns. matrix(minima, i, j) is only called with i < j and with
minima covering columns 0..i at least. The matrix must be totally
monotone for the answer to be exact; the line-breaking cost is, which
turns the quadratic dynamic program into a linear one.

Column 0 has no rows above the diagonal; its minimum is (0, initial).
Ties go to the topmost row.
*/
func OnlineColumnMinima(initial float64, size int, matrix func(minima []ColumnMinimum, i, j int) float64) []ColumnMinimum {
	res := make([]ColumnMinimum, 1, max(size, 1))
	res[0] = ColumnMinimum{Row: 0, Value: initial}

	finished, base, tentative := 0, 0, 0
	m := func(i, j int) float64 {
		return matrix(res[:finished+1], i, j)
	}

	for finished < size-1 {
		i := finished + 1
		if i > tentative {
			rows := make([]int, 0, finished+1-base)
			for r := base; r <= finished; r++ {
				rows = append(rows, r)
			}
			tentative = min(finished+len(rows), size-1)
			cols := make([]int, 0, tentative-finished)
			for c := finished + 1; c <= tentative; c++ {
				cols = append(cols, c)
			}
			mins := make([]int, tentative+1)
			smawkInner(m, rows, cols, mins)
			for _, c := range cols {
				r := mins[c]
				v := m(r, c)
				if c >= len(res) {
					res = append(res, ColumnMinimum{Row: r, Value: v})
				} else if v < res[c].Value {
					res[c] = ColumnMinimum{Row: r, Value: v}
				}
			}
			finished = i
			continue
		}

		diag := m(i-1, i)
		if diag < res[i].Value {
			res[i] = ColumnMinimum{Row: i - 1, Value: diag}
			base, tentative, finished = i-1, i, i
			continue
		}
		if m(i-1, tentative) >= res[tentative].Value {
			finished = i
			continue
		}
		base, tentative, finished = i-1, i, i
	}
	return res
}

// smawkInner stores in mins[c] the row of rows minimising column c, for
// every c in cols. Both rows and cols are increasing.
func smawkInner(m func(i, j int) float64, rows, cols, mins []int) {
	if len(cols) == 0 {
		return
	}

	// reduce: drop rows that cannot hold a minimum of any column
	stack := make([]int, 0, len(cols))
	for _, r := range rows {
		for len(stack) > 0 {
			c := cols[len(stack)-1]
			if m(stack[len(stack)-1], c) <= m(r, c) {
				break
			}
			stack = stack[:len(stack)-1]
		}
		if len(stack) != len(cols) {
			stack = append(stack, r)
		}
	}
	rows = stack

	odd := make([]int, 0, len(cols)/2)
	for i := 1; i < len(cols); i += 2 {
		odd = append(odd, cols[i])
	}
	smawkInner(m, rows, odd, mins)

	// interpolate the even columns between their odd neighbours
	r := 0
	for c := 0; c < len(cols); c += 2 {
		col := cols[c]
		last := rows[len(rows)-1]
		if c+1 < len(cols) {
			last = mins[cols[c+1]]
		}
		row := rows[r]
		best, bv := row, m(row, col)
		for row != last {
			r++
			row = rows[r]
			if v := m(row, col); v < bv {
				best, bv = row, v
			}
		}
		mins[col] = best
	}
}
