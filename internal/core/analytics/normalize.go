package analytics

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxCategoryDistance is the largest edit distance at which a suggested label
// is still snapped onto a known category.
const MaxCategoryDistance = 2

// substrings shorter than this are too ambiguous to match on
const minSubstringLen = 3

// NormalizeCategory maps a suggested category (from bill extraction or voice
// input) onto the closest known label. Matching is case-insensitive and tries
// an exact match, then a substring match, then the nearest label within
// MaxCategoryDistance edits. With no match the trimmed input is returned.
func NormalizeCategory(raw string, known []string) string {
	label := strings.TrimSpace(raw)
	if label == "" {
		return label
	}
	needle := strings.ToLower(label)

	for _, k := range known {
		if strings.ToLower(k) == needle {
			return k
		}
	}
	if len(needle) >= minSubstringLen {
		for _, k := range known {
			lk := strings.ToLower(k)
			if len(lk) >= minSubstringLen && (strings.Contains(lk, needle) || strings.Contains(needle, lk)) {
				return k
			}
		}
	}

	best, bestDist := "", MaxCategoryDistance+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(needle, strings.ToLower(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best != "" {
		return best
	}
	return label
}
