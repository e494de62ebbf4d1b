// Package textmatch provides the string normalization and similarity
// primitives used when comparing a typed answer against a stored word.
package textmatch

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Normalize canonicalizes a string for comparison: leading and trailing
// whitespace is trimmed, letters are lower-cased, and internal runs of
// whitespace collapse to a single space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Distance returns the Levenshtein edit distance between the normalized
// forms of a and b, counted over code points.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(Normalize(a), Normalize(b))
}

// Similarity returns a ratio in [0.0, 1.0] relating edit distance to the
// longer of the two normalized strings. Two empty strings are identical
// (1.0); one empty string against a non-empty one is a total miss (0.0).
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(na, nb)
	return 1.0 - float64(dist)/float64(longest)
}

// Spaces counts the space characters in the normalized form of s. After
// normalization this equals the number of word boundaries, so it is a
// cheap proxy for "same number of words".
func Spaces(s string) int {
	return strings.Count(Normalize(s), " ")
}
