package wrap

import "strings"

/*
WrapColumns lays text out in newspaper-style columns of equal width
that, together with the gaps, fill opts.Width. Each returned row is
left + col1 + middle + col2 ... + right, with every cell padded by
spaces to the column width. Columns are filled top to bottom, left to
right. columns below 1 is treated as 1.
*/
func WrapColumns(text string, columns int, opts Options, left, middle, right string) []string {
	columns = max(columns, 1)
	gaps := DisplayWidth(left) + DisplayWidth(right) + DisplayWidth(middle)*(columns-1)
	inner := satSub(max(opts.Width, 0), gaps)
	colW := max(inner/columns, 1)
	opts.Width = colW
	lastPad := strings.Repeat(" ", inner%colW)

	lines := Wrap(text, opts)
	perCol := (len(lines) + columns - 1) / columns

	rows := make([]string, 0, perCol)
	for r := range perCol {
		var b strings.Builder
		b.WriteString(left)
		for c := range columns {
			if k := r + c*perCol; k < len(lines) {
				cell := lines[k].s
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", satSub(colW, DisplayWidth(cell))))
			} else {
				b.WriteString(strings.Repeat(" ", colW))
			}
			if c == columns-1 {
				b.WriteString(lastPad)
			} else {
				b.WriteString(middle)
			}
		}
		b.WriteString(right)
		rows = append(rows, b.String())
	}
	return rows
}
