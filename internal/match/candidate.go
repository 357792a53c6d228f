package match

import (
	"sort"
)

// Candidate represents a known key template that an unknown key may have meant.
type Candidate struct {
	Key string

	// Scoring components
	NameScore     float64 // normalized Levenshtein similarity of the whole key (0-1)
	LeafScore     float64 // similarity of the last segment only (0-1)
	CombinedScore float64 // higher is better

	// Metadata for debugging/explanation
	NormalizedKey     string
	NormalizedUnknown string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates ranks known key templates by their similarity to unknown.
// Returns candidates sorted by combined score (descending).
func RankCandidates(unknown string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	unknownNorm := NormalizeKey(unknown)
	unknownLeaf := NormalizeIdentWithSuffixStrip(leafSegment(unknown))

	for _, key := range known {
		keyNorm := NormalizeKey(key)

		nameScore := LevenshteinNormalized(keyNorm, unknownNorm)
		leafScore := LevenshteinNormalized(NormalizeIdentWithSuffixStrip(leafSegment(key)), unknownLeaf)

		candidates = append(candidates, Candidate{
			Key:               key,
			NameScore:         nameScore,
			LeafScore:         leafScore,
			CombinedScore:     calculateCombinedScore(nameScore, leafScore),
			NormalizedKey:     keyNorm,
			NormalizedUnknown: unknownNorm,
		})
	}

	// Sort by combined score (descending), then by key for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known keys scoring at least DefaultMinScore against unknown.
func Suggest(unknown string, known []string, n int) []string {
	var out []string

	for _, c := range RankCandidates(unknown, known).AboveThreshold(DefaultMinScore).Top(n) {
		out = append(out, c.Key)
	}

	return out
}

// calculateCombinedScore computes a combined score from whole-key and leaf similarity.
// Weights:
//   - Whole key similarity: 70% (0.0-0.7)
//   - Leaf segment similarity: 30% (0.0-0.3)
func calculateCombinedScore(nameScore, leafScore float64) float64 {
	const (
		nameWeight = 0.7
		leafWeight = 0.3
	)

	return nameScore*nameWeight + leafScore*leafWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by key for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Key < c[j].Key
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// DefaultMinScore is the minimum combined score for a key to be suggested.
const DefaultMinScore = 0.6
