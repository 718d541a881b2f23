package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// ArticleSource identifies the outlet an article came from.
type ArticleSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// RawArticle is an article exactly as returned by an upstream source.
// Any field may be empty; PublishedAt is kept as the raw string so that
// unparsable dates pass through untouched.
type RawArticle struct {
	Source      ArticleSource `json:"source,omitempty"`
	Author      string        `json:"author,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
	PublishedAt string        `json:"publishedAt"`
}

// EnrichedArticle is a RawArticle that survived relevance filtering,
// annotated with its score and category breakdown. Never mutated after
// creation.
type EnrichedArticle struct {
	RawArticle
	RelevanceScore    float64        `json:"relevance_score"`
	CategoryMatches   map[string]int `json:"category_matches"`
	PrimaryCategories []string       `json:"primary_categories"`
	FullDescription   string         `json:"full_description"`
}

// SearchResult is the outcome of a single source call. A non-"ok" status
// carries an optional message and no articles; callers treat it the same
// as an empty result set.
type SearchResult struct {
	Status   string       `json:"status"`
	Message  string       `json:"message,omitempty"`
	Articles []RawArticle `json:"articles"`
}

// OK reports whether the source call succeeded.
func (r SearchResult) OK() bool { return r.Status == "ok" }

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
