package match

import (
	"sort"
)

// DefaultSuggestThreshold is the minimal normalized similarity for a
// candidate to be offered as a suggestion.
const DefaultSuggestThreshold = 0.5

// Candidate is a known name scored against the name that was looked up.
type Candidate struct {
	Name  string
	Score float64 // normalized Levenshtein similarity (0-1)
}

// CandidateList is sortable by score (descending), then by name.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the highest ranked candidate, if any.
func (c CandidateList) Best() (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}

	return c[0], true
}

// RankCandidates scores every known name against name and returns them
// sorted by similarity.
func RankCandidates(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: NormalizedLevenshteinScore(name, k),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the known name most similar to name, or "" when none
// reaches DefaultSuggestThreshold.
func Suggest(name string, known []string) string {
	best, ok := RankCandidates(name, known).Best()
	if !ok || best.Score < DefaultSuggestThreshold {
		return ""
	}

	return best.Name
}
