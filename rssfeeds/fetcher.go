package rssfeeds

import (
	"context"
	"fmt"
	"log"
	"time"

	"fxnews/types"

	"github.com/mmcdole/gofeed"
)

// DefaultFeedPreset names the feed used when none is configured.
const DefaultFeedPreset = "investing"

// FeedPresets maps friendly names to financial news RSS feed URLs.
var FeedPresets = map[string]string{
	"investing": "https://www.investing.com/rss/news_1.rss",
	"fxstreet":  "https://www.fxstreet.com/rss/news",
	"reuters":   "https://feeds.reuters.com/reuters/businessNews",
	"marketw":   "https://feeds.content.dowjones.io/public/rss/mw_topstories",
}

// ResolveFeedURL resolves a feed identifier to a URL. Preset names map to
// their URL; anything else is treated as a direct URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// Source is an RSS/Atom-backed article source. It implements the same
// Search contract as the NewsAPI client so the collector can run against
// feeds when no NewsAPI credential is available. The query is not applied
// here: feeds are already topic-scoped and the relevance engine does the
// filtering.
type Source struct {
	feedURLs       []string
	maxItems       int
	extractContent bool
}

// NewSource creates a feed source over the given feed URLs or preset
// names. When extractContent is set, full article text is fetched with
// readability workers so scoring sees more than the feed summary.
func NewSource(feeds []string, maxItems int, extractContent bool) *Source {
	urls := make([]string, 0, len(feeds))
	for _, f := range feeds {
		urls = append(urls, ResolveFeedURL(f))
	}
	if maxItems <= 0 {
		maxItems = 100
	}
	return &Source{feedURLs: urls, maxItems: maxItems, extractContent: extractContent}
}

// Search fetches every configured feed and returns items published inside
// the date window. A feed that fails to parse is logged and skipped; the
// result is non-ok only when every feed fails.
func (s *Source) Search(ctx context.Context, query string, from, to time.Time) (types.SearchResult, error) {
	parser := gofeed.NewParser()

	var articles []types.RawArticle
	failed := 0

	for _, feedURL := range s.feedURLs {
		feed, err := parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			log.Printf("Warning: failed to fetch feed %s: %v", feedURL, err)
			failed++
			continue
		}

		for _, item := range feed.Items {
			if len(articles) >= s.maxItems {
				break
			}
			a, ok := itemToArticle(item, from, to)
			if !ok {
				continue
			}
			articles = append(articles, a)
		}
	}

	if len(s.feedURLs) > 0 && failed == len(s.feedURLs) {
		return types.SearchResult{
			Status:  "error",
			Message: fmt.Sprintf("all %d feeds failed", failed),
		}, nil
	}

	if s.extractContent {
		ExtractAllContent(articles)
	}

	return types.SearchResult{Status: "ok", Articles: articles}, nil
}

// itemToArticle maps a feed item to a raw article, dropping items outside
// the date window. Items without a parsable date are kept; the relevance
// engine tolerates raw date strings.
func itemToArticle(item *gofeed.Item, from, to time.Time) (types.RawArticle, bool) {
	published := ""
	if item.PublishedParsed != nil {
		t := *item.PublishedParsed
		if t.Before(from) || t.After(to) {
			return types.RawArticle{}, false
		}
		published = t.UTC().Format("2006-01-02T15:04:05Z")
	} else {
		published = item.Published
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	a := types.RawArticle{
		Source:      types.ArticleSource{Name: "rss"},
		Author:      author,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		URL:         item.Link,
		PublishedAt: published,
	}
	if item.Image != nil {
		a.URLToImage = item.Image.URL
	}
	return a, true
}
