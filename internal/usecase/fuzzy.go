package usecase

import "strings"

// fuzzyNameMatch implements the strict matching mode: the query is
// compared against the product name only, and a candidate matches when
// the normalized name contains the query or some name token is within
// the edit-distance threshold of it. Returns a rank used for ordering
// (higher is better) and whether the name matched at all.
func fuzzyNameMatch(normalizedName, normalizedQuery string, maxDistance int) (int, bool) {
	if normalizedQuery == "" {
		return 0, false
	}

	if idx := strings.Index(normalizedName, normalizedQuery); idx >= 0 {
		// Earlier matches rank higher, mirroring location-sensitive
		// fuzzy search in the storefront.
		rank := 200 - idx
		if rank < 100 {
			rank = 100
		}
		return rank, true
	}

	best := -1
	tokens := strings.FieldsFunc(normalizedName, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	for _, token := range tokens {
		if !fuzzyTokenMatch(token, normalizedQuery, maxDistance) {
			continue
		}
		d := levenshteinDistance(token, normalizedQuery)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return 50 - best, true
}

// fuzzyTokenMatch checks if two tokens are similar within the edit distance threshold
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if token1 == token2 {
		return true
	}

	// Only apply fuzzy matching to tokens > 4 chars to avoid false positives
	if len(token1) < 4 || len(token2) < 4 {
		return false
	}

	// Quick length check - if lengths differ by more than threshold, can't match
	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
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

	return prev[n]
}
