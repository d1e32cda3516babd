// Package regionpath enumerates every simple path between two regions of
// a single room's region graph.
//
// What:
//
//   - Through(room, source, dest): all simple paths (no region repeated
//     within one path) from source to dest, each as an ordered list of
//     regions. Distinct paths may overlap freely; only repetition inside
//     a single path is forbidden.
//   - Connections whose rule is impassable (every OR-branch carries the
//     cannot_access token) are excluded from the traversal graph.
//
// Why:
//
//   - The room path finder validates every inter-room hop by asking
//     whether the current room can be crossed between two doors.
//   - The path composer expands each hop into the concrete region
//     sequences walked through the room.
//
// Semantics worth remembering:
//
//   - source == dest returns an empty path set. Callers read this as
//     "already there", not "unreachable".
//   - No path existing between two distinct regions is a valid outcome
//     (the room cannot be crossed between those doors), reported as an
//     empty list and never as an error.
//
// Complexity:
//
//   - Time: O(paths × length) in the number of simple paths; the region
//     graphs in practice are tiny (a handful of regions per room).
//   - Memory: O(paths × length) for the result.
//
// Errors:
//
//	ErrRoomNil             - room pointer is nil.
//	core.ErrRegionNotFound - source, dest, or a connection target is
//	                         missing from the room (wrapped).
package regionpath
