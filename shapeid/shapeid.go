// Package shapeid derives content identifiers for canonical shapes.
//
// An identifier is a CIDv1 with the "raw" multicodec wrapping the shape's
// sha2-256 multihash, so it is stable across processes and depends only on
// the occupied sub-rectangle of the shape.
package shapeid

import (
	"sort"

	"github.com/ipfs/go-cid"

	"xdao.co/shapes/shape"
)

// Of returns the CIDv1 (raw + sha2-256) of c.
func Of(c shape.Canonical) cid.Cid {
	sum := c.Hash()
	if sum == nil {
		// Hash only fails for unknown multihash codes; with SHA2_256 this
		// should be unreachable.
		return cid.Undef
	}
	return cid.NewCidV1(cid.Raw, sum)
}

// String returns the string form of Of(c).
func String(c shape.Canonical) string {
	id := Of(c)
	if !id.Defined() {
		return ""
	}
	return id.String()
}

// OfGrid identifies the canonical shape of g.
func OfGrid(g shape.Grid) cid.Cid {
	return Of(g.Canonical())
}

// Entry pairs a canonical shape with its identifier.
type Entry struct {
	ID    string
	Shape shape.Canonical
}

// SetEntries returns the variants of s ordered by identifier, so output is
// deterministic regardless of set iteration order.
func SetEntries(s shape.VariantSet) []Entry {
	shapes := s.Sorted()
	out := make([]Entry, 0, len(shapes))
	for _, c := range shapes {
		out = append(out, Entry{ID: String(c), Shape: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetIDs returns the sorted identifiers of the variants of s.
func SetIDs(s shape.VariantSet) []string {
	entries := SetEntries(s)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

// Parse decodes an identifier and checks it is a raw sha2-256 CIDv1 as
// produced by Of.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, err
	}
	pref := id.Prefix()
	if pref.Version != 1 || pref.Codec != cid.Raw || pref.MhType != multihashSHA256 {
		return cid.Undef, ErrNotShapeID
	}
	return id, nil
}
