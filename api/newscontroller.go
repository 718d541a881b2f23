package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fxnews/cache"
	"fxnews/collector"
	"fxnews/types"
)

// NewsResponse is the JSON contract for GET /news.
type NewsResponse struct {
	RawNews         []types.EnrichedArticle `json:"raw_news"`
	FormattedNews   string                  `json:"formatted_news"`
	TotalArticles   int                     `json:"total_articles"`
	CategoriesFound []string                `json:"categories_found"`
}

// RegisterNewsRoutes registers the news collection endpoint.
func RegisterNewsRoutes(r *gin.Engine, nc *collector.NewsCollector, respCache *cache.Cache) {
	r.GET("/news", handleGetNews(nc, respCache))
}

// handleGetNews runs one collection pass for the requested keyword.
//
// An empty result answers 404 whether the source failed, returned nothing
// or everything was filtered out; the three cases are deliberately
// indistinguishable at this boundary.
func handleGetNews(nc *collector.NewsCollector, respCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if nc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not found"})
			return
		}

		keyword := c.Query("keyword")
		maxArticles := collector.DefaultMaxArticles
		if v := c.Query("max_articles"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_articles must be a positive integer"})
				return
			}
			maxArticles = n
		}

		key := cache.Key(keyword, maxArticles)
		if payload, ok := respCache.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}

		result := nc.Collect(c.Request.Context(), keyword, maxArticles)
		if len(result.Articles) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No relevant news articles found"})
			return
		}

		resp := NewsResponse{
			RawNews:         result.Articles,
			FormattedNews:   result.Report,
			TotalArticles:   len(result.Articles),
			CategoriesFound: result.CategoriesFound,
		}
		c.JSON(http.StatusOK, resp)

		if payload, err := json.Marshal(resp); err == nil {
			respCache.Set(context.Background(), key, payload)
		}
	}
}
