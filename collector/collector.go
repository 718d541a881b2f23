package collector

import (
	"context"
	"log"
	"time"

	"fxnews/relevance"
	"fxnews/types"
)

// DefaultQuery is the boolean search used when a request does not supply
// its own keyword.
const DefaultQuery = `(forex OR "foreign exchange" OR "currency trading") AND (central bank OR interest rate OR inflation OR currency OR trading)`

const (
	DefaultMaxArticles  = 10
	DefaultSearchWindow = 7 * 24 * time.Hour
)

// Source fetches raw articles for a query over a date window. The call is
// the only I/O step in a collection pass and honors the context deadline.
type Source interface {
	Search(ctx context.Context, query string, from, to time.Time) (types.SearchResult, error)
}

// SnapshotStore persists a formatted report.
type SnapshotStore interface {
	Save(report string) (string, error)
}

// Publisher pushes a ranked article set to downstream consumers.
type Publisher interface {
	PublishArticles(articles []types.EnrichedArticle) error
}

// Options configures a NewsCollector. Zero values fall back to defaults;
// Snapshots and Publisher are optional side effects.
type Options struct {
	MaxArticles int
	MinScore    float64
	Window      time.Duration
	Snapshots   SnapshotStore
	Publisher   Publisher
}

// NewsCollector runs the fetch -> normalize -> score -> filter/rank
// pipeline for one request at a time. The taxonomy is read-only after
// construction, so a single collector is safe for concurrent requests.
type NewsCollector struct {
	source      Source
	taxonomy    relevance.Taxonomy
	maxArticles int
	minScore    float64
	window      time.Duration
	snapshots   SnapshotStore
	publisher   Publisher
}

// New creates a collector over the given source and taxonomy.
func New(source Source, taxonomy relevance.Taxonomy, opts Options) *NewsCollector {
	if opts.MaxArticles <= 0 {
		opts.MaxArticles = DefaultMaxArticles
	}
	if opts.MinScore <= 0 {
		opts.MinScore = relevance.DefaultMinScore
	}
	if opts.Window <= 0 {
		opts.Window = DefaultSearchWindow
	}

	return &NewsCollector{
		source:      source,
		taxonomy:    taxonomy,
		maxArticles: opts.MaxArticles,
		minScore:    opts.MinScore,
		window:      opts.Window,
		snapshots:   opts.Snapshots,
		publisher:   opts.Publisher,
	}
}

// Result is one completed collection pass.
type Result struct {
	Articles        []types.EnrichedArticle
	Report          string
	CategoriesFound []string
}

// Collect fetches, filters and ranks articles for the keyword. Source
// failures and non-ok statuses are logged and yield an empty result;
// callers cannot distinguish "source unavailable" from "nothing relevant".
// Snapshot persistence and publishing run in the background and never
// block or fail the pass.
func (nc *NewsCollector) Collect(ctx context.Context, keyword string, maxArticles int) Result {
	if keyword == "" {
		keyword = DefaultQuery
	}
	if maxArticles <= 0 {
		maxArticles = nc.maxArticles
	}

	to := time.Now()
	from := to.Add(-nc.window)

	searched, err := nc.source.Search(ctx, keyword, from, to)
	if err != nil {
		log.Printf("Warning: article source call failed: %v", err)
		return Result{Report: FormatReport(nil, maxArticles)}
	}
	if !searched.OK() {
		log.Printf("Warning: article source returned status %q: %s", searched.Status, searched.Message)
		return Result{Report: FormatReport(nil, maxArticles)}
	}

	ranked := relevance.FilterAndRank(searched.Articles, nc.taxonomy, nc.minScore, maxArticles)
	log.Printf("Retrieved %d articles, filtered to %d most relevant", len(searched.Articles), len(ranked))

	report := FormatReport(ranked, maxArticles)
	if len(ranked) > 0 {
		nc.runSideEffects(ranked, report)
	}

	return Result{
		Articles:        ranked,
		Report:          report,
		CategoriesFound: relevance.CategoriesFound(ranked, nc.taxonomy),
	}
}

// runSideEffects persists the snapshot and publishes the ranked set
// without blocking the response.
func (nc *NewsCollector) runSideEffects(articles []types.EnrichedArticle, report string) {
	if nc.snapshots != nil {
		go func() {
			path, err := nc.snapshots.Save(report)
			if err != nil {
				log.Printf("Warning: failed to save snapshot: %v", err)
				return
			}
			log.Printf("Saved articles to %s", path)
		}()
	}

	if nc.publisher != nil {
		go func() {
			if err := nc.publisher.PublishArticles(articles); err != nil {
				log.Printf("Warning: failed to publish articles: %v", err)
			}
		}()
	}
}
