package rssfeeds

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestResolveFeedURL(t *testing.T) {
	if got := ResolveFeedURL("fxstreet"); got != FeedPresets["fxstreet"] {
		t.Fatalf("preset not resolved: %q", got)
	}
	direct := "https://example.com/feed.xml"
	if got := ResolveFeedURL(direct); got != direct {
		t.Fatalf("direct URL mangled: %q", got)
	}
}

func TestItemToArticle(t *testing.T) {
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC)
	inWindow := time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inside window", func(t *testing.T) {
		item := &gofeed.Item{
			Title:           "Euro steadies",
			Description:     "summary",
			Link:            "https://example.com/euro",
			PublishedParsed: &inWindow,
		}

		a, ok := itemToArticle(item, from, to)
		if !ok {
			t.Fatal("item inside window was dropped")
		}
		if a.PublishedAt != "2025-08-03T12:00:00Z" {
			t.Fatalf("publishedAt = %q", a.PublishedAt)
		}
		if a.Source.Name != "rss" {
			t.Fatalf("source name = %q; want rss", a.Source.Name)
		}
	})

	t.Run("outside window", func(t *testing.T) {
		item := &gofeed.Item{Title: "stale", PublishedParsed: &outOfWindow}
		if _, ok := itemToArticle(item, from, to); ok {
			t.Fatal("item outside window was kept")
		}
	})

	t.Run("unparsable date passes through", func(t *testing.T) {
		item := &gofeed.Item{Title: "undated", Published: "sometime recently"}
		a, ok := itemToArticle(item, from, to)
		if !ok {
			t.Fatal("undated item was dropped")
		}
		if a.PublishedAt != "sometime recently" {
			t.Fatalf("publishedAt = %q; want raw string", a.PublishedAt)
		}
	})
}
