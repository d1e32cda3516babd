// Package logic collapses the accumulated requirements of a location's
// paths into one minimal sum-of-products expression.
//
// The pipeline is, in order:
//
//  1. Expansion: each path's ordered rule steps (plus the location's
//     intrinsic rule as a final step) are multiplied out by the
//     distributive law into a flat set of AND-only term sets.
//  2. Aggregation: term sets from every path to the same location are
//     unioned: the location is reachable if ANY path's requirements hold.
//  3. Remap and augment: tokens matching the configured remap table are
//     replaced by their canonical identifiers, and any step that saw a
//     replacement gains a "feature disabled" branch as an alternative
//     (turning the gating feature off satisfies the step too). Applied
//     per step, before expansion, when a table is configured.
//  4. Culling: term sets pairing the disabled marker with a token the
//     feature actually gates are contradictions and dropped first; then
//     exact duplicates; then strict supersets of surviving sets, whose
//     requirements are strictly harder than an available alternative.
//
// Culling is a heuristic simplification, not full boolean minimization:
// logically redundant but incomparable term sets survive. That is
// accepted behavior. Absent input (no paths, no intrinsic rule) yields an
// empty expression, never an error; data-completeness warnings belong to
// the caller.
package logic
