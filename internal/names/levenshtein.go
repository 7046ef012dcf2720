package names

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Distance pairs a candidate name with its Levenshtein distance from a
// reference name.
type Distance struct {
	Name     string
	Distance int
}

// RankByDistance computes the Levenshtein distance between ref and every
// candidate and returns the results sorted ascending by distance. The
// sort is stable, so candidates at equal distance keep their input order.
func RankByDistance(ref string, candidates []string) []Distance {
	ranked := make([]Distance, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Distance{
			Name:     c,
			Distance: levenshtein.ComputeDistance(c, ref),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked
}
