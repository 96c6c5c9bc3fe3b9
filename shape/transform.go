package shape

// AlignCorner translates the occupied region so the bounding box's top-left
// corner sits at (0,0). Cells outside the translated region are empty. The
// empty grid is returned unchanged.
func (g Grid) AlignCorner() Grid {
	corner, ok := g.Corner()
	if !ok {
		return g
	}
	var out Grid
	for r := corner.Row; r < Dim; r++ {
		for c := corner.Col; c < Dim; c++ {
			out.cells[r-corner.Row][c-corner.Col] = g.cells[r][c]
		}
	}
	return out
}

// RotateRight turns the full frame 90 degrees clockwise. It does not crop or
// align; four turns return the original grid.
func (g Grid) RotateRight() Grid {
	var out Grid
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out.cells[r][c] = g.cells[Dim-1-c][r]
		}
	}
	return out
}

// Rotate applies n clockwise quarter turns. Negative n turns counterclockwise.
func (g Grid) Rotate(n int) Grid {
	n %= 4
	if n < 0 {
		n += 4
	}
	for ; n > 0; n-- {
		g = g.RotateRight()
	}
	return g
}

// All returns every grid the frame can hold, ordered by the row-major bit
// pattern with cell (0,0) as the lowest bit.
func All() []Grid {
	const n = 1 << (Dim * Dim)
	out := make([]Grid, 0, n)
	for v := uint16(0); v < n; v++ {
		out = append(out, gridFromBits(v))
	}
	return out
}
