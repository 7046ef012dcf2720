package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankByDistance(t *testing.T) {
	ranked := RankByDistance("John Smith", []string{"Zed", "Jon Smith", "John Smyth"})

	require.Len(t, ranked, 3)
	assert.Equal(t, "Jon Smith", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Distance)
	assert.Equal(t, "John Smyth", ranked[1].Name)
	assert.Equal(t, 1, ranked[1].Distance)
	assert.Equal(t, "Zed", ranked[2].Name)
}

func TestRankByDistance_StableOnTies(t *testing.T) {
	// Equal distances keep input order.
	ranked := RankByDistance("abc", []string{"abd", "abe", "abf"})
	assert.Equal(t, "abd", ranked[0].Name)
	assert.Equal(t, "abe", ranked[1].Name)
	assert.Equal(t, "abf", ranked[2].Name)
}

func TestRankByDistance_ExactMatch(t *testing.T) {
	ranked := RankByDistance("John Smith", []string{"Jon Smith", "John Smith"})
	assert.Equal(t, "John Smith", ranked[0].Name)
	assert.Equal(t, 0, ranked[0].Distance)
}
