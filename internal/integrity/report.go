package integrity

// Discrepancy is one failed invariant check, identifying the table, the
// entity inspected and what went wrong.
type Discrepancy struct {
	Table string
	ID    string
	Info  string
}

// NearDuplicate records two distinct canonical names within the
// near-duplicate edit-distance threshold of each other.
type NearDuplicate struct {
	Name1    string
	Name2    string
	Distance int
}

// Report collects everything a checker session found. A session is clean
// iff both logs are empty.
type Report struct {
	Discrepancies  []Discrepancy
	NearDuplicates []NearDuplicate
}

// Clean reports whether the session found nothing to flag.
func (r *Report) Clean() bool {
	return len(r.Discrepancies) == 0 && len(r.NearDuplicates) == 0
}

// KnownSimilarPairs suppresses near-duplicate findings for name pairs
// reviewed and approved as genuinely distinct. Membership is
// order-insensitive.
type KnownSimilarPairs [][2]string

// Contains reports whether (a, b) or (b, a) is an approved pair.
func (k KnownSimilarPairs) Contains(a, b string) bool {
	for _, pair := range k {
		if pair[0] == a && pair[1] == b {
			return true
		}
		if pair[0] == b && pair[1] == a {
			return true
		}
	}
	return false
}
