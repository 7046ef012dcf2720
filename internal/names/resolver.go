package names

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Abbreviated first names with periods (e.g. "C.J.").
	abbrPeriodsRe = regexp.MustCompile(`^[A-Z]\.[A-Z]\.`)
	// Abbreviated first names without periods (e.g. "CJ").
	abbrNoPeriodsRe = regexp.MustCompile(`^[A-Z][A-Z]`)
)

// CanonicalResolver maps a full name onto its canonical spelling by
// applying a fixed sequence of rewrite rules against a universe of
// approved names.
//
// The abbreviation and suffix rules exit early on failure: those input
// shapes admit exactly one deterministic rewrite, and weaker heuristics
// applied afterward would risk wrong matches. The apostrophe, hyphen and
// alias rules are tried exhaustively.
type CanonicalResolver struct {
	universe map[string]struct{}
	aliases  *AliasTable
}

// NewCanonicalResolver builds a resolver over the universe of canonical
// names, consulting aliases for first-name nickname substitution.
func NewCanonicalResolver(universe []string, aliases *AliasTable) *CanonicalResolver {
	set := make(map[string]struct{}, len(universe))
	for _, n := range universe {
		set[n] = struct{}{}
	}
	if aliases == nil {
		aliases = NewAliasTable(nil)
	}
	return &CanonicalResolver{universe: set, aliases: aliases}
}

func (r *CanonicalResolver) contains(name string) bool {
	_, ok := r.universe[name]
	return ok
}

// Resolve returns the canonical spelling of full, or ErrNameNotFound
// when no rule produces a universe hit. Resolving an already-canonical
// name returns it unchanged.
func (r *CanonicalResolver) Resolve(full string) (string, error) {
	if r.contains(full) {
		return full, nil
	}

	n, err := Parse(full)
	if err != nil {
		return "", err
	}

	// Abbreviated first name without periods: CJ -> C.J.
	if abbrNoPeriodsRe.MatchString(n.First) {
		cand := n.First[:1] + "." + n.First[1:2] + ". " + n.Last
		if r.contains(cand) {
			return cand, nil
		}
		return "", fmt.Errorf("resolve %q: %w", full, ErrNameNotFound)
	}

	// Abbreviated first name with periods: C.J. -> CJ
	if abbrPeriodsRe.MatchString(n.First) {
		cand := strings.ReplaceAll(n.First, ".", "") + " " + n.Last
		if r.contains(cand) {
			return cand, nil
		}
		return "", fmt.Errorf("resolve %q: %w", full, ErrNameNotFound)
	}

	// Generational suffix stripped.
	if n.Suffix != "" {
		cand := n.First + " " + n.Last
		if r.contains(cand) {
			return cand, nil
		}
		return "", fmt.Errorf("resolve %q: %w", full, ErrNameNotFound)
	}

	// Apostrophes stripped from first or last name.
	if strings.Contains(n.First, "'") {
		cand := strings.ReplaceAll(n.First, "'", "") + " " + n.Last
		if r.contains(cand) {
			return cand, nil
		}
	}
	if strings.Contains(n.Last, "'") {
		cand := n.First + " " + strings.ReplaceAll(n.Last, "'", "")
		if r.contains(cand) {
			return cand, nil
		}
	}

	// Hyphenated surname: try each component as a standalone last name.
	if strings.Contains(n.Last, "-") {
		for _, part := range strings.Split(n.Last, "-") {
			cand := n.First + " " + part
			if r.contains(cand) {
				return cand, nil
			}
		}
	}

	// First-name alias substitution.
	for _, alias := range r.aliases.Aliases(n.First) {
		cand := alias + " " + n.Last
		if r.contains(cand) {
			return cand, nil
		}
	}

	return "", fmt.Errorf("resolve %q: %w", full, ErrNameNotFound)
}
