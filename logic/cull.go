package logic

// Cull reduces a term-set collection to its minimal equivalent form:
//
//	(a) terms pairing the disabled marker with a gated token are
//	    contradictions and are dropped outright, before deduplication;
//	(b) exact duplicates collapse to one;
//	(c) any term that is a strict superset of a surviving term is
//	    removed; its requirement is strictly harder to satisfy than an
//	    alternative that is always available alongside it.
//
// Culling an already-culled collection returns it unchanged (idempotent).
// Incomparable but logically redundant terms survive; this is superset
// elimination, not full minimization.
func Cull(terms [][]string, marker string, gated func(token string) bool) [][]string {
	// (a) invalidity filter
	valid := terms[:0:0]
	for _, term := range terms {
		if marker != "" && gated != nil && contradictory(term, marker, gated) {
			continue
		}
		valid = append(valid, term)
	}

	// (b) exact-membership dedup, keeping first occurrence order
	seen := make(map[string]bool, len(valid))
	unique := valid[:0:0]
	for _, term := range valid {
		key := termKey(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, term)
	}

	// (c) strict-superset removal. After dedup a subset of equal size is
	// the same term, so subset-of-another and smaller are equivalent
	// checks; order among survivors is preserved.
	out := unique[:0:0]
	for i, term := range unique {
		redundant := false
		for j, other := range unique {
			if i != j && strictSubset(other, term) {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, term)
		}
	}
	return out
}

// contradictory reports whether term holds the disabled marker together
// with any other token the disabled feature gates.
func contradictory(term []string, marker string, gated func(token string) bool) bool {
	hasMarker := false
	for _, token := range term {
		if token == marker {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return false
	}
	for _, token := range term {
		if token != marker && gated(token) {
			return true
		}
	}
	return false
}

// strictSubset reports whether a ⊂ b (proper subset by membership).
func strictSubset(a, b []string) bool {
	if len(a) >= len(b) {
		return false
	}
	members := make(map[string]bool, len(b))
	for _, token := range b {
		members[token] = true
	}
	for _, token := range a {
		if !members[token] {
			return false
		}
	}
	return true
}
