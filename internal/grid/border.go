package grid

// Border returns every cell 8-adjacent to a numeral of n, excluding the
// numerals themselves. It is built per numeral: the leftmost contributes its
// left column, the rightmost its right column, and every numeral the cells
// directly above and below. A single-digit number therefore gets its full
// 8-neighbourhood. Cells with a negative coordinate are dropped.
func (n Number) Border() map[Position]struct{} {
	border := make(map[Position]struct{}, 2*len(n.Numerals)+6)
	add := func(row, col int) {
		if row >= 0 && col >= 0 {
			border[Position{Row: row, Col: col}] = struct{}{}
		}
	}

	last := len(n.Numerals) - 1
	for i, d := range n.Numerals {
		r, c := d.Row, d.Col
		add(r-1, c)
		add(r+1, c)
		if i == 0 {
			add(r-1, c-1)
			add(r, c-1)
			add(r+1, c-1)
		}
		if i == last {
			add(r-1, c+1)
			add(r, c+1)
			add(r+1, c+1)
		}
	}
	return border
}

// BoxBorder is the ring of cells around the run [c0, c1] on row, computed
// from the bounding box. Negative coordinates are dropped, as in Border.
func BoxBorder(row, c0, c1 int) map[Position]struct{} {
	border := make(map[Position]struct{})
	for r := row - 1; r <= row+1; r++ {
		for c := c0 - 1; c <= c1+1; c++ {
			if r == row && c >= c0 && c <= c1 {
				continue
			}
			if r < 0 || c < 0 {
				continue
			}
			border[Position{Row: r, Col: c}] = struct{}{}
		}
	}
	return border
}
