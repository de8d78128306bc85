// Package match provides identifier normalization, Levenshtein distance
// calculation and candidate ranking used to suggest the intended name when an
// option key or a field name is misspelled.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names by similarity to a given one
//   - Suggest: returns the best candidate above a similarity threshold
package match
