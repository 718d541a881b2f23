package rssfeeds

import (
	"log"
	"sync"
	"time"

	"fxnews/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAllContent fetches full article text for every article using a
// worker pool, filling in the Content field in place. Extraction failures
// are logged and leave the article's feed-provided text untouched.
func ExtractAllContent(articles []types.RawArticle) {
	var wg sync.WaitGroup
	indexChan := make(chan int, len(articles))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for idx := range indexChan {
				if err := extractContent(&articles[idx]); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, articles[idx].URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for i := range articles {
		wg.Add(1)
		indexChan <- i
	}

	wg.Wait()
	close(indexChan)
}

// extractContent fetches and extracts readable text for a single article.
func extractContent(article *types.RawArticle) error {
	if article.URL == "" {
		return nil
	}

	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return err
	}

	if extracted.TextContent != "" {
		article.Content = extracted.TextContent
	}
	if article.Description == "" {
		article.Description = extracted.Excerpt
	}
	if article.Author == "" {
		article.Author = extracted.Byline
	}
	if article.URLToImage == "" {
		article.URLToImage = extracted.Image
	}
	return nil
}
