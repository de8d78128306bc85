package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var optionNames = []string{"ignoreDefaults", "lenientDates", "lenientOrder", "lenientNumbers"}

func TestRankCandidates(t *testing.T) {
	ranked := RankCandidates("lenientOrdr", optionNames)
	require.Len(t, ranked, len(optionNames))

	best, ok := ranked.Best()
	require.True(t, ok)
	assert.Equal(t, "lenientOrder", best.Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankCandidates_TiesSortedByName(t *testing.T) {
	ranked := RankCandidates("x", []string{"b", "a"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestBest_Empty(t *testing.T) {
	_, ok := RankCandidates("x", nil).Best()
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"lenientOrdr", "lenientOrder"},
		{"ignore_default", "ignoreDefaults"},
		{"LenientNumber", "lenientNumbers"},
		{"zzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.name, optionNames))
		})
	}
}
