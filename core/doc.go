// Package core defines the immutable level data model shared by every
// stage of the pipeline: levels, rooms, regions, doors, room connections,
// requirement rules, and the location/path artifacts the pipeline emits.
//
// What:
//
//   - Level / Room / Region / Connection / Door / RoomConnection mirror the
//     level data file one to one. Rooms form a directed graph inside a
//     level; each room's regions form a directed graph of their own.
//   - Rule is an OR-of-ANDs requirement expression over opaque capability
//     tokens. An empty Rule is trivially satisfied; a Rule whose every
//     branch carries the cannot_access token marks a connection that can
//     never be traversed.
//   - Location, LocationPath and CollapsedLogic are the pipeline's output
//     artifacts: a point of interest, one concrete traversal to it, and
//     its final collapsed requirement expression.
//
// The object graph is deliberately ownership-free: rooms and regions are
// addressed by stable string identifiers, never by back-references, so the
// model stays acyclic and safe to share read-only across a whole run.
// Call (*LevelData).Index after construction to build the name lookup
// tables; every lookup method falls back to a linear scan when the tables
// are absent, so hand-built test fixtures work without it.
//
// Errors:
//
//	ErrLevelNotFound  - referenced level absent from the data set.
//	ErrNoRooms        - level has no rooms at all.
//	ErrRoomNotFound   - referenced room absent from its level.
//	ErrRegionNotFound - referenced region absent from its room.
package core
