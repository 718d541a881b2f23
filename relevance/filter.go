package relevance

import (
	"sort"

	"fxnews/types"
)

// FilterAndRank normalizes and scores each raw article, admits those that
// meet the minimum score and matched at least one category, and returns
// them sorted by descending score, truncated to maxCount.
//
// The sort is stable: articles with equal scores keep their original
// relative order, so the output is deterministic for a deterministic
// input order. The hasCategories check is redundant under the current
// additive model but guards against a taxonomy where the threshold could
// be crossed with zero positive matches.
func FilterAndRank(articles []types.RawArticle, tax Taxonomy, minScore float64, maxCount int) []types.EnrichedArticle {
	admitted := make([]types.EnrichedArticle, 0, len(articles))

	for _, a := range articles {
		result := Score(Normalize(a), tax)
		if result.Score < minScore || !result.HasCategories() {
			continue
		}

		admitted = append(admitted, types.EnrichedArticle{
			RawArticle:        a,
			RelevanceScore:    result.Score,
			CategoryMatches:   result.CategoryMatches,
			PrimaryCategories: primaryCategories(result, tax),
			FullDescription:   FullDescription(a),
		})
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		return admitted[i].RelevanceScore > admitted[j].RelevanceScore
	})

	if maxCount >= 0 && len(admitted) > maxCount {
		admitted = admitted[:maxCount]
	}
	return admitted
}

// primaryCategories lists the matched category names in taxonomy order.
func primaryCategories(r ScoreResult, tax Taxonomy) []string {
	names := make([]string, 0, len(tax.Categories))
	for _, cat := range tax.Categories {
		if r.CategoryMatches[cat.Name] > 0 {
			names = append(names, cat.Name)
		}
	}
	return names
}

// CategoriesFound returns the union of primary categories across a ranked
// set, in taxonomy order.
func CategoriesFound(articles []types.EnrichedArticle, tax Taxonomy) []string {
	seen := make(map[string]bool)
	for _, a := range articles {
		for _, c := range a.PrimaryCategories {
			seen[c] = true
		}
	}

	names := make([]string, 0, len(seen))
	for _, cat := range tax.Categories {
		if seen[cat.Name] {
			names = append(names, cat.Name)
		}
	}
	return names
}
