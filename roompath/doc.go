// Package roompath enumerates every structurally valid sequence of room
// connections linking a source room/region to a destination room/region
// within one level.
//
// What:
//
//   - Finder.Between runs a depth-first search with an explicit frontier
//     over the level's forward room graph, validating each inter-room hop
//     against the region path finder as the search advances, so branches
//     that cannot actually cross a room die immediately.
//   - Reachability pruning: before searching, the set of rooms able to
//     reach the destination at all (reverse-graph BFS, memoized in the
//     cache) is computed; branches stepping outside it are cut. This is
//     what bounds the search on cyclic room graphs.
//   - Bounded revisits: each branch carries its own per-room visit
//     counter. A room may be entered up to MaxRevisits times (default 2)
//     per branch, permitting a hub room to be left and re-entered through
//     a different door without unbounded looping. A room connection is
//     never reused within one branch (value identity of the 4-tuple).
//   - Chained sublevels: a level declared as an ordered chain of segments
//     (entry/exit room+region pairs) is searched segment by segment, each
//     within its own carved-out subgraph, and the per-segment path sets
//     are combined by ordered Cartesian product. Segment entry→exit sets
//     are cached and shared by every location further down the chain.
//
// Semantics worth remembering:
//
//   - Source room equal to destination room returns an empty path set.
//     Known limitation: a route that must leave the origin room and loop
//     back is therefore never discovered; preserved pending level data
//     confirming such a route exists.
//   - Zero paths is a valid outcome (destination unreachable), not an
//     error.
//
// Errors:
//
//	ErrLevelNil / ErrCacheNil  - constructor misuse.
//	ErrSegmentGap              - chained search could not place the
//	                             destination or join two segments.
//	core.ErrNoRooms, core.ErrRoomNotFound, core.ErrRegionNotFound -
//	                             missing data, wrapped with context.
package roompath
