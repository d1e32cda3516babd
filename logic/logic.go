package logic

import (
	"sort"
	"strings"

	"github.com/ashlyng/summitpath/core"
)

// Expand multiplies a sequence of OR-of-AND rule steps into a flat list
// of AND-only term sets whose disjunction is logically equivalent.
//
// The accumulator starts as one empty term (the identity for AND); each
// step replaces it with the Cartesian product of the existing terms and
// the step's OR-branches, set-unioning the tokens. Empty steps carry no
// requirement and are skipped. Terms come back with sorted, de-duplicated
// tokens.
//
// Complexity: O(∏ branches) terms in the worst case.
func Expand(steps []core.Rule) [][]string {
	terms := []map[string]bool{{}}

	for _, step := range steps {
		if step.Empty() {
			continue
		}
		next := make([]map[string]bool, 0, len(terms)*len(step))
		for _, term := range terms {
			for _, branch := range step {
				merged := make(map[string]bool, len(term)+len(branch))
				for token := range term {
					merged[token] = true
				}
				for _, token := range branch {
					merged[token] = true
				}
				next = append(next, merged)
			}
		}
		terms = next
	}

	out := make([][]string, len(terms))
	for i, term := range terms {
		out[i] = sortedTokens(term)
	}
	return out
}

// Collapse produces a location's final sum-of-products expression from
// its paths and intrinsic rule, running expansion, aggregation, optional
// remapping, and culling.
//
// No paths and no intrinsic rule yield an empty expression ("no gating
// information"); a lone empty term after culling collapses to nil ("no
// requirement"). Neither is an error.
func Collapse(paths []core.LocationPath, intrinsic core.Rule, opts ...Option) [][]string {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var terms [][]string
	for _, path := range paths {
		steps := make([]core.Rule, 0, len(path.Rules)+1)
		steps = append(steps, path.Rules...)
		steps = append(steps, intrinsic)
		if o.Remap != nil {
			steps = Remap(steps, o.Remap, o.DisabledMarker)
		}
		terms = append(terms, Expand(steps)...)
	}

	// Direct access gated only by the intrinsic rule.
	if len(paths) == 0 && !intrinsic.Empty() {
		steps := []core.Rule{intrinsic}
		if o.Remap != nil {
			steps = Remap(steps, o.Remap, o.DisabledMarker)
		}
		terms = Expand(steps)
	}

	terms = Cull(terms, o.DisabledMarker, o.Gated)

	if len(terms) == 1 && len(terms[0]) == 0 {
		return nil
	}
	return terms
}

func sortedTokens(term map[string]bool) []string {
	out := make([]string, 0, len(term))
	for token := range term {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// termKey canonicalizes a term for membership comparison. Tokens never
// contain the separator (they are plain rule-engine identifiers).
func termKey(term []string) string {
	sorted := append([]string(nil), term...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f")
}
