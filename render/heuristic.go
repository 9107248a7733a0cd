package render

import "strings"

// BoolHeuristic decides whether a byte tag holding 0 or 1 displays as a
// boolean. It matches on the lowercased tag name. The heuristic is a
// display policy, not part of the format; callers may supply their own
// lists.
type BoolHeuristic struct {
	Names    []string
	Prefixes []string
	Suffixes []string
}

// DefaultBoolHeuristic covers the names conventional save data uses for
// flags.
func DefaultBoolHeuristic() BoolHeuristic {
	return BoolHeuristic{
		Names:    []string{"hardcore"},
		Prefixes: []string{"has", "is", "seen", "should", "on", "flag", "bool", "boolean"},
		Suffixes: []string{"ing", "locked", "flag", "boolean", "bool"},
	}
}

func (h BoolHeuristic) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, n := range h.Names {
		if lower == n {
			return true
		}
	}
	for _, p := range h.Prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, s := range h.Suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
