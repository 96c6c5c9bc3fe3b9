// Package ingredient pairs a piece color with the shapes the piece can
// present.
package ingredient

import (
	"fmt"
	"strings"

	"xdao.co/shapes/shape"
)

type Color string

const (
	Red    Color = "red"
	Green  Color = "green"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Purple Color = "purple"
)

// Colors lists every valid color in declaration order.
var Colors = []Color{Red, Green, Blue, Yellow, Purple}

func (c Color) String() string { return string(c) }

// Valid reports whether c is one of Colors.
func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// ParseColor maps a name to a Color. Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// Ingredient is an immutable pairing of a color and the variant set of its
// shape. Shapes are compared by canonical equality only; callers never see
// raw grid coordinates through an Ingredient.
type Ingredient struct {
	color  Color
	shapes shape.VariantSet
}

// FromGrid builds an ingredient from a raw occupancy grid.
func FromGrid(color Color, g shape.Grid) Ingredient {
	return Ingredient{color: color, shapes: g.Variants()}
}

func (i Ingredient) Color() Color { return i.color }

// Shapes returns the variant set. VariantSet exposes no mutators, so the
// ingredient stays immutable.
func (i Ingredient) Shapes() shape.VariantSet { return i.shapes }

// Fits reports whether c is one of the shapes the ingredient can present.
func (i Ingredient) Fits(c shape.Canonical) bool {
	return i.shapes.Contains(c)
}

// SameShape reports whether both ingredients present the same set of shapes,
// regardless of color.
func (i Ingredient) SameShape(o Ingredient) bool {
	return i.shapes.Equal(o.shapes)
}
