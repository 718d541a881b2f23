package relevance

import "strings"

// ScoreResult holds the outcome of scoring one text blob.
type ScoreResult struct {
	// Score is the weighted keyword score, floored at zero.
	Score float64
	// CategoryMatches maps category name to the number of distinct
	// keywords from that category found in the text.
	CategoryMatches map[string]int
}

// HasCategories reports whether at least one category matched.
func (r ScoreResult) HasCategories() bool {
	for _, n := range r.CategoryMatches {
		if n > 0 {
			return true
		}
	}
	return false
}

// Score computes the relevance score of a text blob against the taxonomy.
//
// Matching is case-insensitive substring containment, not tokenized word
// matching: a keyword inside a larger word still counts. That keeps the
// scorer robust to punctuation and pluralization noise at the cost of
// false positives on embedded substrings ("eur" inside "Europe"), and
// callers rely on that exact behavior.
//
// Each distinct matching keyword adds its category weight once, no matter
// how often it occurs. Each distinct exclusion term found subtracts
// ExclusionPenalty; the final score never goes below zero.
func Score(text string, tax Taxonomy) ScoreResult {
	lower := strings.ToLower(text)

	score := 0.0
	matches := make(map[string]int, len(tax.Categories))

	for _, cat := range tax.Categories {
		found := 0
		for _, term := range cat.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				found++
				score += cat.Weight
			}
		}
		matches[cat.Name] = found
	}

	for _, term := range tax.Exclusions {
		if strings.Contains(lower, strings.ToLower(term)) {
			score -= ExclusionPenalty
		}
	}

	if score < 0 {
		score = 0
	}
	return ScoreResult{Score: score, CategoryMatches: matches}
}
