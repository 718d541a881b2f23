package config

// Server constants
const (
	// DefaultPort is used when PORT is not set.
	DefaultPort = "8080"
)

// Scheduler constants
const (
	// DefaultRefreshSpec drives the background collection pass when
	// NEWS_REFRESH_CRON is set to "default".
	DefaultRefreshSpec = "@every 1h"
)

// Forecasting constants
var (
	// ForecastCurrencies are the codes whose current rates are included
	// in the forecasting prompt when the rates API is configured.
	ForecastCurrencies = []string{"EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY"}
)
