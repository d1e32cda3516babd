// Package summitpath enumerates every way through a platformer level and
// collapses what it finds into boolean reachability logic for randomizer
// trackers.
//
// A level data file describes levels as rooms of regions wired by gated
// region connections and directed door links between rooms. From that
// model the pipeline answers one question per location of interest:
// starting at the level entry, which combinations of abilities and items
// make this location reachable?
//
// The pipeline runs in three stages, each persisted as a JSON data file:
//
//	locations — extract every point of interest from the level data
//	paths     — enumerate all region paths from the level entry to each
//	            location, respecting connection rules, door links, and
//	            room revisit bounds
//	logic     — expand the per-path requirement rules into a flat
//	            sum-of-products expression, then cull redundant terms
//
// Everything is organized under focused subpackages:
//
//	core/       — the shared data model: levels, rooms, regions, rules,
//	              locations, and collapsed logic records
//	regionpath/ — DFS over a single room's region graph
//	roompath/   — DFS over a level's room graph, with reachability
//	              pruning, revisit bounds, and chained sub-levels
//	pathcache/  — memoized region paths, traversal graphs, and segment
//	              path sets shared across one run
//	compose/    — stitches room-level paths and region-level paths into
//	              full per-location traversals
//	logic/      — the rule synthesizer: expand, remap, cull, collapse
//	generate/   — the batch pipeline over whole data files
//	datafile/   — JSON data file I/O and pre-run sanity reports
//	config/     — the YAML run configuration
//	tracker/    — PopTracker pack injection for the collapsed logic
//
// The summitpath command under cmd/ drives the stages in order; see its
// help output for the usual run.
package summitpath
