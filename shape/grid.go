package shape

import "strings"

// Dim is the fixed edge length of the occupancy frame.
const Dim = 3

// Grid is a 3x3 occupancy frame indexed by (row, column).
//
// Grid is a value type: every transformation returns a new Grid and never
// shares storage with its receiver.
type Grid struct {
	cells [Dim][Dim]bool
}

// FromRows wraps a literal occupancy matrix.
func FromRows(rows [Dim][Dim]bool) Grid {
	return Grid{cells: rows}
}

// Rows returns a copy of the occupancy matrix.
func (g Grid) Rows() [Dim][Dim]bool {
	return g.cells
}

// At reports whether the cell at (r, c) is occupied. Coordinates outside the
// frame are reported as empty.
func (g Grid) At(r, c int) bool {
	if r < 0 || r >= Dim || c < 0 || c >= Dim {
		return false
	}
	return g.cells[r][c]
}

// Empty reports whether no cell is occupied.
func (g Grid) Empty() bool {
	return g.Count() == 0
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if g.cells[r][c] {
				n++
			}
		}
	}
	return n
}

// String renders the grid in the strict literal form accepted by ParseGrid,
// e.g. "Oxx/xOx/xOx".
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(Dim*Dim + Dim - 1)
	for r := 0; r < Dim; r++ {
		if r > 0 {
			b.WriteByte(rowSep)
		}
		for c := 0; c < Dim; c++ {
			if g.cells[r][c] {
				b.WriteByte(occupied)
			} else {
				b.WriteByte(vacant)
			}
		}
	}
	return b.String()
}

// bits packs the frame row-major into the low nine bits, cell (0,0) first.
func (g Grid) bits() uint16 {
	var v uint16
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if g.cells[r][c] {
				v |= 1 << (r*Dim + c)
			}
		}
	}
	return v
}

func gridFromBits(v uint16) Grid {
	var g Grid
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			g.cells[r][c] = v&(1<<(r*Dim+c)) != 0
		}
	}
	return g
}
