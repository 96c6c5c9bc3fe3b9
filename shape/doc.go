// Package shape canonicalizes the footprint of a game piece.
//
// A piece is described by a Grid: a fixed 3x3 occupancy frame. Canonical
// reduces a grid to its occupied bounding box aligned to the origin, so two
// grids that differ only by translation compare equal. Variants collects the
// canonical shapes of all four quarter-turn rotations.
//
// Every operation is a pure function over value types. Nothing here blocks,
// allocates shared state, or fails; the only error path is ParseGrid, which
// turns text literals into grids.
package shape
