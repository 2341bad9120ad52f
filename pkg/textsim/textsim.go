// Package textsim scores how alike two short strings are.
package textsim

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DuplicateThreshold is the similarity above which two reminder texts are
// treated as the same reminder.
const DuplicateThreshold = 0.7

// Distance returns the Levenshtein edit distance between a and b, counting
// insertions, deletions and substitutions of runes at cost 1.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity normalises Distance into [0, 1]: (maxLen - distance) / maxLen.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-Distance(a, b)) / float64(maxLen)
}

// IsDuplicate reports whether a and b are similar enough to collapse.
func IsDuplicate(a, b string) bool {
	return Similarity(a, b) > DuplicateThreshold
}
