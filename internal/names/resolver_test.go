package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalResolver_ExactMatch(t *testing.T) {
	r := NewCanonicalResolver([]string{"Chris Paul"}, nil)

	// Already-canonical names come back unchanged.
	got, err := r.Resolve("Chris Paul")
	require.NoError(t, err)
	assert.Equal(t, "Chris Paul", got)
}

func TestCanonicalResolver_AbbrevWithoutPeriods(t *testing.T) {
	r := NewCanonicalResolver([]string{"C.J. McCollum"}, nil)

	got, err := r.Resolve("CJ McCollum")
	require.NoError(t, err)
	assert.Equal(t, "C.J. McCollum", got)
}

func TestCanonicalResolver_AbbrevWithPeriods(t *testing.T) {
	r := NewCanonicalResolver([]string{"CJ Smith"}, nil)

	got, err := r.Resolve("C.J. Smith")
	require.NoError(t, err)
	assert.Equal(t, "CJ Smith", got)
}

func TestCanonicalResolver_AbbrevShortCircuits(t *testing.T) {
	// The abbreviation rewrite is the only rule tried for that input
	// shape; nothing weaker runs afterward.
	r := NewCanonicalResolver([]string{"Chris Smith"}, nil)

	_, err := r.Resolve("C.J. Smith")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestCanonicalResolver_SuffixStripped(t *testing.T) {
	r := NewCanonicalResolver([]string{"Otto Porter"}, nil)

	got, err := r.Resolve("Otto Porter Jr.")
	require.NoError(t, err)
	assert.Equal(t, "Otto Porter", got)
}

func TestCanonicalResolver_SuffixShortCircuits(t *testing.T) {
	r := NewCanonicalResolver([]string{"Somebody Else"}, nil)

	_, err := r.Resolve("Otto Porter Jr.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestCanonicalResolver_ApostropheStripped(t *testing.T) {
	r := NewCanonicalResolver([]string{"DAngelo Russell", "Kyle OQuinn"}, nil)

	got, err := r.Resolve("D'Angelo Russell")
	require.NoError(t, err)
	assert.Equal(t, "DAngelo Russell", got)

	got, err = r.Resolve("Kyle O'Quinn")
	require.NoError(t, err)
	assert.Equal(t, "Kyle OQuinn", got)
}

func TestCanonicalResolver_HyphenatedSurname(t *testing.T) {
	r := NewCanonicalResolver([]string{"John Smith"}, nil)

	got, err := r.Resolve("John Smith-Jones")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", got)
}

func TestCanonicalResolver_AliasSubstitution(t *testing.T) {
	aliases := NewAliasTable([]AliasEntry{{Name: "Christopher", Nickname: "Chris"}})
	r := NewCanonicalResolver([]string{"Christopher Paul"}, aliases)

	got, err := r.Resolve("Chris Paul")
	require.NoError(t, err)
	assert.Equal(t, "Christopher Paul", got)
}

func TestCanonicalResolver_ApostropheFallsThroughToAlias(t *testing.T) {
	// Apostrophe stripping fails but processing continues to later
	// rules, unlike the abbreviation and suffix rewrites.
	aliases := NewAliasTable([]AliasEntry{{Name: "Da'Sean", Nickname: "Day"}})
	r := NewCanonicalResolver([]string{"Day Butler"}, aliases)

	got, err := r.Resolve("Da'Sean Butler")
	require.NoError(t, err)
	assert.Equal(t, "Day Butler", got)
}

func TestCanonicalResolver_NotFound(t *testing.T) {
	r := NewCanonicalResolver([]string{"Chris Paul"}, nil)

	_, err := r.Resolve("Damian Lillard")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestCanonicalResolver_UnparseableInput(t *testing.T) {
	r := NewCanonicalResolver([]string{"Chris Paul"}, nil)

	_, err := r.Resolve("Nene")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameFormat)
}
