// Package match ranks known names by edit distance to an unknown one.
//
// It backs the "did you mean" suggestions attached to diagnostics for
// misspelled directive keys and declaration file keys.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest known names within a distance budget
package match
