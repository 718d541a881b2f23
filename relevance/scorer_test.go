package relevance

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreWeightedMatches(t *testing.T) {
	tax := Taxonomy{
		Categories: []Category{
			{Name: "monetary_policy", Weight: 3.0, Terms: []string{"federal reserve", "interest rate"}},
			{Name: "economic_indicators", Weight: 2.5, Terms: []string{"inflation"}},
		},
	}
	text := "The Federal Reserve raised interest rates amid inflation concerns"

	result := Score(text, tax)

	// "federal reserve" and "interest rate" at 3.0 each, "inflation" at 2.5.
	if !almostEqual(result.Score, 8.5) {
		t.Fatalf("score = %v; want 8.5", result.Score)
	}
	if result.CategoryMatches["monetary_policy"] != 2 {
		t.Fatalf("monetary_policy matches = %d; want 2", result.CategoryMatches["monetary_policy"])
	}
	if result.CategoryMatches["economic_indicators"] != 1 {
		t.Fatalf("economic_indicators matches = %d; want 1", result.CategoryMatches["economic_indicators"])
	}
	if !result.HasCategories() {
		t.Fatal("HasCategories() = false; want true")
	}
}

func TestScoreDefaultTaxonomy(t *testing.T) {
	result := Score("The Federal Reserve raised interest rates amid inflation concerns", DefaultTaxonomy())

	// Substring matching makes "fed" match inside "federal" as well, so
	// monetary_policy picks up three distinct terms here.
	if result.CategoryMatches["monetary_policy"] != 3 {
		t.Fatalf("monetary_policy matches = %d; want 3", result.CategoryMatches["monetary_policy"])
	}
	if result.CategoryMatches["economic_indicators"] != 1 {
		t.Fatalf("economic_indicators matches = %d; want 1", result.CategoryMatches["economic_indicators"])
	}
	if !almostEqual(result.Score, 11.5) {
		t.Fatalf("score = %v; want 11.5", result.Score)
	}
}

func TestScoreFloorAtZero(t *testing.T) {
	tax := DefaultTaxonomy()

	cases := []struct {
		name string
		text string
	}{
		{"exclusion only", "bitcoin rally continues"},
		{"penalties exceed matches", "breakout for bitcoin and ethereum nft metaverse plays"},
		{"no matches at all", "local bakery wins pie contest"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := Score(c.text, tax)
			if result.Score < 0 {
				t.Fatalf("score = %v; want >= 0", result.Score)
			}
		})
	}
}

func TestScoreExclusionOnlyText(t *testing.T) {
	result := Score("bitcoin", DefaultTaxonomy())

	if result.Score != 0 {
		t.Fatalf("score = %v; want 0", result.Score)
	}
	if result.HasCategories() {
		t.Fatal("HasCategories() = true for text with no taxonomy matches")
	}
}

func TestScoreDistinctKeywordCounting(t *testing.T) {
	tax := Taxonomy{
		Categories: []Category{
			{Name: "test", Weight: 2.0, Terms: []string{"euro"}},
		},
	}

	// The same keyword repeated counts once, not per occurrence.
	result := Score("euro euro euro", tax)
	if !almostEqual(result.Score, 2.0) {
		t.Fatalf("score = %v; want 2.0", result.Score)
	}
	if result.CategoryMatches["test"] != 1 {
		t.Fatalf("matches = %d; want 1", result.CategoryMatches["test"])
	}
}

func TestScoreSubstringContainment(t *testing.T) {
	tax := Taxonomy{
		Categories: []Category{
			{Name: "currency_specific", Weight: 3.0, Terms: []string{"eur"}},
		},
	}

	// Substring matching is deliberate: "eur" inside "Europe" counts.
	result := Score("Europe opens higher", tax)
	if result.CategoryMatches["currency_specific"] != 1 {
		t.Fatalf("matches = %d; want 1 (substring containment)", result.CategoryMatches["currency_specific"])
	}
}

func TestScoreExclusionPenaltyPerDistinctTerm(t *testing.T) {
	tax := Taxonomy{
		Categories: []Category{
			{Name: "test", Weight: 3.0, Terms: []string{"currency"}},
		},
		Exclusions: []string{"crypto", "nft"},
	}

	// One match (+3.0), two distinct exclusions (-5.0), floored at 0.
	result := Score("currency moves as crypto and nft markets slide", tax)
	if result.Score != 0 {
		t.Fatalf("score = %v; want 0", result.Score)
	}
	// Category matches are unaffected by penalties.
	if result.CategoryMatches["test"] != 1 {
		t.Fatalf("matches = %d; want 1", result.CategoryMatches["test"])
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	result := Score("FOREX TRADERS EYE THE ECB", DefaultTaxonomy())
	if result.CategoryMatches["currency_specific"] == 0 {
		t.Fatal("uppercase text did not match currency_specific terms")
	}
	if result.CategoryMatches["monetary_policy"] == 0 {
		t.Fatal("uppercase text did not match monetary_policy terms")
	}
}
