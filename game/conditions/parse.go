package conditions

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// normalize lowercases the input and collapses separators so "Heavy Rain",
// "heavy-rain" and "heavy_rain" all compare equal.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// closest returns the index of the candidate with the smallest edit distance
// from s, or false when even the best candidate is not a plausible typo.
func closest(s string, candidates []string) (int, bool) {
	best := -1
	bestDist := -1
	for i, cand := range candidates {
		dist := levenshtein.ComputeDistance(s, cand)
		if bestDist == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best >= 0 && bestDist <= 2 {
		return best, true
	}
	return 0, false
}
