package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fxnews/rates"
)

// RegisterRatesRoutes registers the exchange rate endpoints.
func RegisterRatesRoutes(r *gin.Engine, rc *rates.Client) {
	g := r.Group("/rates")
	g.GET("/latest", handleLatestRates(rc))
	g.GET("/historical", handleHistoricalRates(rc))
}

func handleLatestRates(rc *rates.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rates API is not configured"})
			return
		}

		result, err := rc.Latest(c.Request.Context(), splitCurrencies(c.Query("currencies")))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}

func handleHistoricalRates(rc *rates.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rates API is not configured"})
			return
		}

		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
			return
		}

		result, err := rc.Historical(c.Request.Context(), date, splitCurrencies(c.Query("currencies")))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "data": result})
	}
}

func splitCurrencies(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
