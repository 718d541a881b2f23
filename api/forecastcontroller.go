package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fxnews/config"
	"fxnews/forecast"
	"fxnews/rates"
)

// ForecastRequest is the JSON body for POST /forecast.
type ForecastRequest struct {
	SystemMessage string `json:"system_message"`
	UserMessage   string `json:"user_message"`
}

// RegisterForecastRoutes registers the forecasting endpoint.
func RegisterForecastRoutes(r *gin.Engine, gen forecast.Generator, ratesClient *rates.Client) {
	r.POST("/forecast", handleForecast(gen, ratesClient))
}

// handleForecast proxies a prompt to the text-generation model and
// returns the forecast as plain text. When the rates client is
// configured, current exchange rates are prepended to the prompt so the
// model sees the market context alongside the news.
func handleForecast(gen forecast.Generator, ratesClient *rates.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gen == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "text generation is not configured"})
			return
		}

		var req ForecastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.UserMessage == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No user message provided."})
			return
		}

		var currentRates map[string]float64
		if ratesClient != nil {
			var err error
			currentRates, err = ratesClient.Latest(c.Request.Context(), config.ForecastCurrencies)
			if err != nil {
				log.Printf("Warning: rates lookup failed, forecasting without them: %v", err)
			}
		}
		prompt := forecast.BuildPrompt(req.UserMessage, currentRates)

		text, err := gen.Generate(c.Request.Context(), req.SystemMessage, prompt)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		go forecast.SaveOutput(text)
		c.String(http.StatusOK, text)
	}
}
