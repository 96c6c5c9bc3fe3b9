package shape

// Point is a (row, column) coordinate in the frame.
type Point struct {
	Row int
	Col int
}

// fold scans every occupied cell and folds pick over the coordinate chosen by
// axis. ok is false when no cell is occupied.
func (g Grid) fold(axis func(r, c int) int, pick func(a, b int) int) (v int, ok bool) {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if !g.cells[r][c] {
				continue
			}
			x := axis(r, c)
			if !ok {
				v, ok = x, true
				continue
			}
			v = pick(v, x)
		}
	}
	return v, ok
}

func rowOf(r, _ int) int { return r }
func colOf(_, c int) int { return c }

func lesser(a, b int) int { return min(a, b) }
func greater(a, b int) int { return max(a, b) }

// Left returns the leftmost occupied column.
func (g Grid) Left() (int, bool) { return g.fold(colOf, lesser) }

// Right returns the rightmost occupied column.
func (g Grid) Right() (int, bool) { return g.fold(colOf, greater) }

// Top returns the topmost occupied row.
func (g Grid) Top() (int, bool) { return g.fold(rowOf, lesser) }

// Bottom returns the bottommost occupied row.
func (g Grid) Bottom() (int, bool) { return g.fold(rowOf, greater) }

// Corner returns the top-left corner of the bounding box. ok is false only
// for the empty grid; a shape occupying cell (0,0) reports Point{0, 0}, true.
func (g Grid) Corner() (Point, bool) {
	top, ok := g.Top()
	if !ok {
		return Point{}, false
	}
	left, ok := g.Left()
	if !ok {
		return Point{}, false
	}
	return Point{Row: top, Col: left}, true
}

// Size returns the bounding box width and height. An axis without occupied
// cells contributes 0, so the empty grid reports (0, 0).
//
// Size never fails; callers that need an origin must use Corner.
func (g Grid) Size() (width, height int) {
	if l, ok := g.Left(); ok {
		if r, ok := g.Right(); ok {
			width = r - l + 1
		}
	}
	if t, ok := g.Top(); ok {
		if b, ok := g.Bottom(); ok {
			height = b - t + 1
		}
	}
	return width, height
}
