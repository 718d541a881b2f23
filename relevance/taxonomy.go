package relevance

// ExclusionPenalty is subtracted from the score once for every distinct
// exclusion term found in an article's text.
const ExclusionPenalty = 2.5

// DefaultMinScore is the admission threshold applied by FilterAndRank when
// callers do not override it.
const DefaultMinScore = 4.0

// Category is a named set of keywords that contribute a fixed weight per
// distinct matching term.
type Category struct {
	Name   string
	Weight float64
	Terms  []string
}

// Taxonomy is the full scoring configuration: an ordered list of weighted
// keyword categories plus a flat exclusion list. It is built once and
// treated as read-only afterwards, so unsynchronized concurrent reads are
// safe.
type Taxonomy struct {
	Categories []Category
	Exclusions []string
}

// DefaultTaxonomy returns the forex/currency-market scoring configuration.
// Category order is significant: it fixes the order of primary_categories
// on enriched articles.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: []Category{
			{
				Name:   "monetary_policy",
				Weight: 3.0,
				Terms: []string{
					"interest rate", "central bank", "federal reserve", "ecb",
					"bank of japan", "monetary policy", "rate decision", "fed",
					"boe", "bank of england", "rate hike", "rate cut",
				},
			},
			{
				Name:   "economic_indicators",
				Weight: 2.5,
				Terms: []string{
					"gdp", "inflation", "cpi", "ppi", "employment", "nfp",
					"trade balance", "retail sales", "industrial production",
					"pmi", "manufacturing", "economic growth", "recession",
				},
			},
			{
				Name:   "currency_specific",
				Weight: 3.0,
				Terms: []string{
					"forex", "currency", "exchange rate", "usd", "eur", "gbp",
					"jpy", "dollar", "euro", "pound", "yen", "yuan", "renminbi",
					"forex trading", "currency pair", "forex market",
					"eur/usd", "gbp/usd", "usd/jpy", "currency market",
				},
			},
			{
				Name:   "market_sentiment",
				Weight: 2.0,
				Terms: []string{
					"bull", "bear", "hawkish", "dovish", "volatility", "risk",
					"sentiment", "momentum", "outlook", "forecast", "market mood",
					"risk appetite", "risk aversion", "market confidence",
				},
			},
			{
				Name:   "geopolitical",
				Weight: 2.0,
				Terms: []string{
					"war", "conflict", "sanctions", "trade war", "election",
					"political", "agreement", "deal", "summit", "regulation",
					"policy change", "diplomatic", "international relations",
				},
			},
			{
				Name:   "technical_analysis",
				Weight: 1.5,
				Terms: []string{
					"technical analysis", "support level", "resistance level",
					"price action", "trend analysis", "market trend",
					"trading volume", "market volatility", "breakout",
					"technical indicator", "moving average",
				},
			},
		},
		Exclusions: []string{
			"cryptocurrency", "crypto", "bitcoin", "ethereum",
			"nft", "metaverse", "meme stock", "reddit",
			"unrelated", "non-financial",
		},
	}
}
