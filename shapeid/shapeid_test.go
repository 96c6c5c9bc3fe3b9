package shapeid

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"xdao.co/shapes/shape"
)

func TestOf_TranslationInvariant(t *testing.T) {
	a := OfGrid(shape.MustParseGrid("OOx/Oxx/xxx"))
	b := OfGrid(shape.MustParseGrid("xxx/xOO/xOx"))
	if !a.Equals(b) {
		t.Fatalf("translated shapes got different IDs: %s vs %s", a, b)
	}
	c := OfGrid(shape.MustParseGrid("xxx/xOO/xxO"))
	if a.Equals(c) {
		t.Fatalf("distinct shapes share ID %s", a)
	}
}

func TestString_IsRawCIDv1(t *testing.T) {
	s := String(shape.MustParseGrid("xOx/OOO/xOx").Canonical())
	if !strings.HasPrefix(s, "bafkrei") {
		t.Fatalf("expected raw sha2-256 CIDv1 (bafkrei...), got %q", s)
	}
	id, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if id.String() != s {
		t.Fatalf("Parse round trip = %s, want %s", id, s)
	}
}

func TestString_Deterministic(t *testing.T) {
	g := shape.MustParseGrid("Oxx/Oxx/OOx")
	first := String(g.Canonical())
	for i := 0; i < 10; i++ {
		if got := String(g.Canonical()); got != first {
			t.Fatalf("iteration %d: %s != %s", i, got, first)
		}
	}
}

func TestParse_RejectsForeignCIDs(t *testing.T) {
	sum, err := multihash.Sum([]byte("not a shape"), multihash.SHA2_256, -1)
	if err != nil {
		t.Fatalf("multihash.Sum: %v", err)
	}
	pb := cid.NewCidV1(cid.DagProtobuf, sum).String()
	if _, err := Parse(pb); !errors.Is(err, ErrNotShapeID) {
		t.Fatalf("Parse(dag-pb) err = %v, want ErrNotShapeID", err)
	}
	if _, err := Parse("not-a-cid"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSetIDs_SortedAndComplete(t *testing.T) {
	set := shape.MustParseGrid("Oxx/Oxx/OOx").Variants()
	ids := SetIDs(set)
	if len(ids) != 4 {
		t.Fatalf("got %d IDs, want 4", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs not strictly ascending: %v", ids)
		}
	}

	var want []string
	for _, e := range SetEntries(set) {
		if !set.Contains(e.Shape) {
			t.Fatalf("entry %s not in set", e.Shape)
		}
		want = append(want, String(e.Shape))
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("SetIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestSetIDs_RotationsShareIDs(t *testing.T) {
	g := shape.MustParseGrid("xOO/OOx/xxx")
	want := SetIDs(g.Variants())
	for n := 1; n < 4; n++ {
		if diff := cmp.Diff(want, SetIDs(g.Rotate(n).Variants())); diff != "" {
			t.Fatalf("rotation %d changed variant IDs (-want +got):\n%s", n, diff)
		}
	}
}
