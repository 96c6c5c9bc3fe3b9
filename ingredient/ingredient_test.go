package ingredient

import (
	"testing"

	"xdao.co/shapes/shape"
)

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, err := ParseColor(" " + string(c) + " ")
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c, err)
		}
		if got != c {
			t.Fatalf("ParseColor(%q) = %q", c, got)
		}
	}
	if got, err := ParseColor("PURPLE"); err != nil || got != Purple {
		t.Fatalf("ParseColor(PURPLE) = %q, %v", got, err)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Fatalf("expected unknown color to be rejected")
	}
	if Color("").Valid() {
		t.Fatalf("empty color must be invalid")
	}
}

func TestFromGrid(t *testing.T) {
	ing := FromGrid(Green, shape.MustParseGrid("xxx/OOO/xxx"))
	if ing.Color() != Green {
		t.Fatalf("Color() = %s, want green", ing.Color())
	}
	if ing.Shapes().Len() != 2 {
		t.Fatalf("bar has %d shapes, want 2", ing.Shapes().Len())
	}
	if !ing.Fits(shape.MustParseGrid("xOx/xOx/xOx").Canonical()) {
		t.Fatalf("vertical bar should fit")
	}
	if ing.Fits(shape.MustParseGrid("OOx/xxx/xxx").Canonical()) {
		t.Fatalf("short bar should not fit")
	}
}

func TestSameShape_IgnoresColorAndOrientation(t *testing.T) {
	a := FromGrid(Red, shape.MustParseGrid("Oxx/Oxx/OOx"))
	b := FromGrid(Blue, shape.MustParseGrid("xxx/xxO/OOO"))
	if !a.SameShape(b) {
		t.Fatalf("rotated L ingredients should present the same shapes")
	}
	c := FromGrid(Red, shape.MustParseGrid("xxx/xOO/xOx"))
	if a.SameShape(c) {
		t.Fatalf("L and corner should differ")
	}
}
