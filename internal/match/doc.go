// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest the intended flat key when a store
// carries a key that no mapping declares.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - NormalizeKey: normalizes a whole key template segment by segment
//   - Levenshtein: computes rune edit distance between strings
//   - RankCandidates: ranks known key templates against an unknown key
package match
