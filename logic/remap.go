package logic

import "github.com/ashlyng/summitpath/core"

// Remap rewrites every token of every step through the remap table and,
// for each step where at least one token was rewritten, appends one extra
// OR-branch holding only the disabled marker: turning the gating feature
// off is an alternative way to satisfy that step.
//
// The input steps are never mutated.
func Remap(steps []core.Rule, table map[string]string, marker string) []core.Rule {
	out := make([]core.Rule, len(steps))
	for i, step := range steps {
		if step.Empty() {
			out[i] = step
			continue
		}

		remapped := false
		rewritten := make(core.Rule, len(step))
		for j, branch := range step {
			tokens := make([]string, len(branch))
			for k, token := range branch {
				if canonical, ok := table[token]; ok {
					tokens[k] = canonical
					remapped = true
				} else {
					tokens[k] = token
				}
			}
			rewritten[j] = tokens
		}

		if remapped && marker != "" {
			rewritten = append(rewritten, []string{marker})
		}
		out[i] = rewritten
	}
	return out
}
