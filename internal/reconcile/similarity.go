package reconcile

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns the normalized edit-distance similarity of two strings:
// (maxLen - levenshtein(a,b)) / maxLen, case-insensitive, 1.0 when both are
// empty.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}

// normalizeSkillCategory reduces a skill category name to its core term so
// "Technical Skills" and "Technical" compare as equivalent
func normalizeSkillCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	for _, filler := range []string{"skills", "skill"} {
		normalized = strings.TrimSpace(strings.TrimSuffix(normalized, filler))
		normalized = strings.TrimSpace(strings.TrimPrefix(normalized, filler))
	}
	if normalized == "" {
		return strings.ToLower(strings.TrimSpace(category))
	}
	return normalized
}
