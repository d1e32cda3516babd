// Package generate drives the whole-batch pipeline: extract locations
// from the level model, compute every location path, and collapse each
// location's accumulated requirements into its final logic rule.
//
// The run is single-threaded and eager: one loop over locations, one
// shared pathcache.Cache per run, one roompath.Finder per level. Missing
// referenced data (level, room, region, entry source) aborts with an
// error; unreachable or gate-free locations are valid outcomes that are
// only logged.
package generate
