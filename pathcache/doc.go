// Package pathcache provides the per-run memoization layer shared by the
// room path finder and the path composer.
//
// A Cache is an explicit object scoped to one batch run, never global
// state, and holds append-only maps of:
//
//   - region path sets, keyed by (level, room, source region, dest region);
//   - forward and reverse room graphs, keyed by level;
//   - destination reachability sets, keyed by (level, dest room);
//   - chained-sublevel segment path sets, keyed by (level, segment index).
//
// Entries are computed once and never invalidated: the level model is
// immutable for the duration of a run, so a key's value can never change.
// The design is single-threaded; if shared across goroutines the maps
// would need a single-flight convention around each computation.
package pathcache
