package assistant

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var arabicFolding = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
)

// normalize folds Arabic orthographic variants so a query spelled with a
// different alef or yeh form still matches, then lowercases for the Latin
// product names.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(arabicFolding.Replace(text)))
}

// similarity is a difflib-style ratio in [0,1] built on Levenshtein distance
// over runes. Two empty strings are identical.
func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// closeMatches returns up to n choices whose normalized form scores at least
// cutoff against the normalized query, best first. Original spellings are
// returned, not the normalized ones.
func closeMatches(query string, choices []string, n int, cutoff float64) []string {
	query = normalize(query)

	type scored struct {
		original string
		score    float64
	}
	candidates := make([]scored, 0, len(choices))
	for _, choice := range choices {
		if score := similarity(query, normalize(choice)); score >= cutoff {
			candidates = append(candidates, scored{original: choice, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	matches := make([]string, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, c.original)
	}
	return matches
}
