package names

// AbbreviationResolver matches abbreviated box-score names such as
// "C. Smith" against an authoritative list of full names. The expected
// shape is "<first-initial>. <last-name>": byte 0 is the initial and
// bytes 3 onward are the last name.
type AbbreviationResolver struct {
	universe []string
	parsed   []Name
	fallback map[string]string
}

// NewAbbreviationResolver builds a resolver over an ordered universe of
// full names. Universe members that do not parse are skipped for the
// initial/last-name scan but still participate in the edit-distance
// fallback.
func NewAbbreviationResolver(universe []string) *AbbreviationResolver {
	return &AbbreviationResolver{
		universe: universe,
		parsed:   ParseAll(universe),
		fallback: make(map[string]string),
	}
}

// FullName returns the universe member matching abbrev. Matching scans
// the universe in order for an exact last-name hit whose first name
// starts with the target initial; the first match wins. When nothing
// matches, the closest universe member by edit distance is returned and
// the pair is recorded for audit. Given a non-empty universe the method
// always produces a result.
func (r *AbbreviationResolver) FullName(abbrev string) string {
	initial := abbrev[0]
	last := abbrev[3:]
	for _, n := range r.parsed {
		if n.Last != last {
			continue
		}
		if n.First[0] == initial {
			return n.Full
		}
	}

	ranked := RankByDistance(abbrev, r.universe)
	best := ranked[0].Name
	r.fallback[abbrev] = best
	return best
}

// FallbackMatches returns the abbreviation-to-name pairs that were
// resolved by edit distance rather than an initial/last-name hit.
func (r *AbbreviationResolver) FallbackMatches() map[string]string {
	out := make(map[string]string, len(r.fallback))
	for k, v := range r.fallback {
		out[k] = v
	}
	return out
}

// FallbackCount returns how many abbreviations needed the edit-distance
// fallback.
func (r *AbbreviationResolver) FallbackCount() int {
	return len(r.fallback)
}
