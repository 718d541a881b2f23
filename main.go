package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fxnews/api"
	"fxnews/cache"
	"fxnews/collector"
	"fxnews/config"
	"fxnews/forecast"
	"fxnews/kafka"
	"fxnews/newsapi"
	"fxnews/rates"
	"fxnews/relevance"
	"fxnews/rssfeeds"
	"fxnews/scheduler"
	"fxnews/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":" + config.DefaultPort
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	nc := buildCollector()
	respCache := cache.NewFromEnv()
	gen := forecast.NewGeneratorFromEnv()
	ratesClient := rates.NewClientFromEnv()

	if gen == nil {
		log.Println("COHERE_API_KEY not set; /forecast disabled")
	}
	if ratesClient == nil {
		log.Println("FREECURRENCY_API_KEY not set; /rates disabled")
	}

	startScheduler(nc)

	r := api.NewRouter(api.Deps{
		Collector: nc,
		Cache:     respCache,
		Generator: gen,
		Rates:     ratesClient,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /news")
	log.Println("  POST /forecast")
	log.Println("  GET  /rates/latest")
	log.Println("  GET  /rates/historical")
	log.Println("  GET  /api/health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildCollector wires the article source, snapshot store and optional
// Kafka publisher. Returns nil when no source credential or feed is
// configured; the news endpoint then answers 500.
func buildCollector() *collector.NewsCollector {
	var source collector.Source
	if client := newsapi.NewClientFromEnv(); client != nil {
		source = client
		log.Println("Using NewsAPI article source")
	} else if feeds := strings.TrimSpace(os.Getenv("RSS_FEEDS")); feeds != "" {
		extract := strings.EqualFold(os.Getenv("RSS_EXTRACT_CONTENT"), "true")
		source = rssfeeds.NewSource(strings.Split(feeds, ","), 100, extract)
		log.Println("Using RSS article source")
	} else {
		log.Println("Warning: no NEWSAPI_KEY or RSS_FEEDS configured; /news will answer 500")
		return nil
	}

	snapshots := buildSnapshots()

	var publisher collector.Publisher
	producer, err := kafka.NewProducerFromEnv()
	if err != nil {
		log.Printf("Warning: failed to init Kafka producer: %v (publishing disabled)", err)
	} else if producer != nil {
		publisher = producer
		log.Println("Kafka publishing enabled")
	}

	return collector.New(source, relevance.DefaultTaxonomy(), collector.Options{
		Snapshots: snapshots,
		Publisher: publisher,
	})
}

// buildSnapshots sets up the local snapshot dir, wrapped with S3
// mirroring when S3_BUCKET is configured.
func buildSnapshots() collector.SnapshotStore {
	dir, err := storage.NewDir(os.Getenv("SNAPSHOT_DIR"))
	if err != nil {
		log.Printf("Warning: snapshot dir unavailable: %v (snapshots disabled)", err)
		return nil
	}

	s3cfg, ok := storage.S3ConfigFromEnv()
	if !ok {
		return dir
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := storage.NewS3Store(ctx, dir, s3cfg)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		return dir
	}
	log.Printf("Mirroring snapshots to S3 bucket %q", s3cfg.Bucket)
	return store
}

// startScheduler launches the periodic background refresh when
// NEWS_REFRESH_CRON is set.
func startScheduler(nc *collector.NewsCollector) {
	spec := strings.TrimSpace(os.Getenv("NEWS_REFRESH_CRON"))
	if spec == "" || nc == nil {
		return
	}
	if strings.EqualFold(spec, "default") {
		spec = config.DefaultRefreshSpec
	}

	sched, err := scheduler.New(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		result := nc.Collect(ctx, "", 0)
		log.Printf("Scheduled refresh complete: %d relevant articles", len(result.Articles))
	})
	if err != nil {
		log.Printf("Warning: %v (scheduled refresh disabled)", err)
		return
	}

	sched.Start()
	log.Printf("Scheduled news refresh enabled: %s", spec)
}
