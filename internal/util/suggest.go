// Package util holds small helpers shared by the name parsers.
package util

import (
	"fmt"
	"strings"
)

// maxSuggestDistance bounds how far a typo may be from a suggestion.
const maxSuggestDistance = 2

// ParseName matches s case-insensitively against valid. On failure the error
// wraps errUnknown and, when one is close enough, suggests a valid name.
func ParseName[T ~string](s string, valid []T, errUnknown error) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, v := range valid {
		if string(v) == normalized {
			return v, nil
		}
	}

	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	if suggestion := Closest(normalized, names); suggestion != "" {
		return "", fmt.Errorf("%w %q, did you mean %q? (valid: %v)", errUnknown, s, suggestion, names)
	}
	return "", fmt.Errorf("%w %q (valid: %v)", errUnknown, s, names)
}

// Closest returns the candidate with the smallest Levenshtein distance to
// input, or "" when none is within maxSuggestDistance.
func Closest(input string, candidates []string) string {
	bestDistance := maxSuggestDistance + 1
	var bestMatch string

	for _, c := range candidates {
		if d := levenshteinDistance(input, c); d < bestDistance {
			bestDistance = d
			bestMatch = c
		}
	}
	return bestMatch
}

// levenshteinDistance is the minimum number of single-character insertions,
// deletions or substitutions turning a into b.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
