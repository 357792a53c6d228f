package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	known := []string{"Id", "Name", "Inners[].Id", "Inners[].Name", "TestDateYear"}

	ranked := RankCandidates("Inners[].Nmae", known)
	require.Len(t, ranked, len(known))
	assert.Equal(t, "Inners[].Name", ranked.Best().Key)

	ranked = RankCandidates("testdate_year", known)
	assert.Equal(t, "TestDateYear", ranked.Best().Key)
	assert.InDelta(t, 1.0, ranked.Best().CombinedScore, 0.001)
}

func TestRankCandidatesDeterministicTies(t *testing.T) {
	ranked := RankCandidates("zzz", []string{"b", "a"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Key)
	assert.Equal(t, "b", ranked[1].Key)
}

func TestSuggest(t *testing.T) {
	known := []string{"Email", "Password", "Address.Street", "Address.City"}

	assert.Equal(t, []string{"Address.Street"}, Suggest("Adress.Street", known, 1))
	assert.Empty(t, Suggest("Completely.Unrelated", known, 3))
	assert.Empty(t, Suggest("x", nil, 3))
}
