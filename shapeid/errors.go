package shapeid

import (
	"errors"

	"github.com/multiformats/go-multihash"
)

const multihashSHA256 = multihash.SHA2_256

// ErrNotShapeID is returned by Parse for well-formed CIDs that were not
// produced by Of.
var ErrNotShapeID = errors.New("shapeid: not a raw sha2-256 CIDv1")
