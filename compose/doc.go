// Package compose expands room-level paths into full location paths.
//
// Given one room path (a sequence of room connections) and the region
// context at both ends, it fetches the region paths through every room
// along the way and combines them by Cartesian product into concrete
// region-by-region traversals, then flattens each into the storage form:
// the ordered room-qualified region list plus the ordered list of
// non-empty hop rules.
//
// The product is the dominant source of combinatorial growth in the whole
// pipeline, which is why the room path finder prunes so aggressively
// upstream.
//
// A hop that was validated upstream but yields zero region paths here is
// an invariant violation (ErrNoRouteThroughRoom): silently skipping it
// would corrupt the product, so it surfaces immediately.
package compose
