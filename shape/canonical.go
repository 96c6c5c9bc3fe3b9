package shape

import (
	"sort"

	"github.com/multiformats/go-multihash"
)

// Canonical is a grid reduced to its occupied bounding box and aligned to
// the origin. Two canonical shapes are equal exactly when their aligned grids
// are identical; the cached size is derived from the grid and cannot be set
// independently.
//
// Canonical is comparable and may be used directly as a map key.
type Canonical struct {
	width  int
	height int
	grid   Grid
}

// Canonical reduces g to its canonical shape.
func (g Grid) Canonical() Canonical {
	w, h := g.Size()
	return Canonical{width: w, height: h, grid: g.AlignCorner()}
}

// Size returns the bounding box width and height.
func (c Canonical) Size() (width, height int) {
	return c.width, c.height
}

// Grid returns the corner-aligned occupancy frame.
func (c Canonical) Grid() Grid {
	return c.grid
}

// Equal reports whether c and o describe the same shape.
func (c Canonical) Equal(o Canonical) bool {
	return c.grid == o.grid
}

// String renders the occupied sub-rectangle only, e.g. "Ox/xO/xO" for a
// 2x3 shape. The empty shape renders as "-".
func (c Canonical) String() string {
	if c.width == 0 || c.height == 0 {
		return "-"
	}
	b := make([]byte, 0, c.height*(c.width+1))
	for r := 0; r < c.height; r++ {
		if r > 0 {
			b = append(b, rowSep)
		}
		for col := 0; col < c.width; col++ {
			if c.grid.cells[r][col] {
				b = append(b, occupied)
			} else {
				b = append(b, vacant)
			}
		}
	}
	return string(b)
}

// digestInput is the byte form hashed by Hash: width, height, then the
// occupied sub-rectangle row-major with one byte per cell. Cells outside the
// bounding box never participate.
func (c Canonical) digestInput() []byte {
	b := make([]byte, 0, 2+c.width*c.height)
	b = append(b, byte(c.width), byte(c.height))
	for r := 0; r < c.height; r++ {
		for col := 0; col < c.width; col++ {
			if c.grid.cells[r][col] {
				b = append(b, 1)
			} else {
				b = append(b, 0)
			}
		}
	}
	return b
}

// Hash returns a sha2-256 multihash of the shape. Equal shapes always hash
// equal.
func (c Canonical) Hash() multihash.Multihash {
	sum, err := multihash.Sum(c.digestInput(), multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for unknown codes or bad lengths.
		return nil
	}
	return sum
}

// less orders shapes by height, width, then row-major bit pattern.
func (c Canonical) less(o Canonical) bool {
	if c.height != o.height {
		return c.height < o.height
	}
	if c.width != o.width {
		return c.width < o.width
	}
	return c.grid.bits() < o.grid.bits()
}

// VariantSet is the deduplicated set of canonical shapes a grid presents
// under quarter-turn rotation. It holds 1, 2 or 4 shapes.
type VariantSet struct {
	shapes map[Canonical]struct{}
}

// Variants canonicalizes g and each of its three further quarter turns.
func (g Grid) Variants() VariantSet {
	set := VariantSet{shapes: make(map[Canonical]struct{}, 4)}
	cur := g
	for i := 0; i < 4; i++ {
		set.shapes[cur.Canonical()] = struct{}{}
		cur = cur.RotateRight()
	}
	return set
}

// Len returns the number of distinct shapes.
func (s VariantSet) Len() int {
	return len(s.shapes)
}

// Contains reports whether c is one of the variants.
func (s VariantSet) Contains(c Canonical) bool {
	_, ok := s.shapes[c]
	return ok
}

// Equal reports whether both sets hold the same shapes.
func (s VariantSet) Equal(o VariantSet) bool {
	if len(s.shapes) != len(o.shapes) {
		return false
	}
	for c := range s.shapes {
		if _, ok := o.shapes[c]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the variants in a deterministic order. The order carries no
// meaning beyond stable output.
func (s VariantSet) Sorted() []Canonical {
	out := make([]Canonical, 0, len(s.shapes))
	for c := range s.shapes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}
