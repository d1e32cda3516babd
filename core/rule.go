package core

// CannotAccess is the sentinel token marking a connection branch that can
// never be satisfied. A connection whose every branch carries it is
// permanently untraversable and is excluded from traversal graphs.
const CannotAccess = "cannot_access"

// Rule is a requirement expression in disjunctive normal form.
//
// The outer slice is a logical OR; each inner slice is a logical AND of
// atomic capability tokens. A nil or empty Rule is trivially satisfied.
//
// Example: Rule{{"springs", "dream_blocks"}, {"dash_refills"}} is satisfied
// by having springs AND dream_blocks, OR by having dash_refills alone.
type Rule [][]string

// Empty reports whether the rule carries no requirement at all.
func (r Rule) Empty() bool { return len(r) == 0 }

// Impassable reports whether every OR-branch of the rule contains the
// CannotAccess token, i.e. the rule can never be satisfied.
// An empty rule is passable.
//
// Complexity: O(branches × tokens)
func (r Rule) Impassable() bool {
	if len(r) == 0 {
		return false
	}
	for _, branch := range r {
		if !containsToken(branch, CannotAccess) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the rule. A nil rule clones to nil.
func (r Rule) Clone() Rule {
	if r == nil {
		return nil
	}
	out := make(Rule, len(r))
	for i, branch := range r {
		out[i] = append([]string(nil), branch...)
	}
	return out
}

func containsToken(branch []string, token string) bool {
	for _, t := range branch {
		if t == token {
			return true
		}
	}
	return false
}
