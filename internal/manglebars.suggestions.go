package internal

import (
	"github.com/sahilm/fuzzy"
)

// FindSimilarOperators returns up to maxSuggestions registered names that resemble target.
// A candidate matches when either string fuzzily contains the other, which catches both
// truncated names ("eac" -> "each") and padded ones ("iff" -> "if").
func FindSimilarOperators(target string, candidates []string, maxSuggestions int) []string {
	if target == StringValueEmpty || len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	result := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool, len(candidates))
	add := func(s string) {
		if !seen[s] && len(result) < maxSuggestions {
			seen[s] = true
			result = append(result, s)
		}
	}

	// Matches are sorted best-first.
	for _, m := range fuzzy.Find(target, candidates) {
		add(m.Str)
	}
	for _, candidate := range candidates {
		if len(fuzzy.Find(candidate, []string{target})) > 0 {
			add(candidate)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
