package api

import (
	"github.com/gin-gonic/gin"

	"fxnews/cache"
	"fxnews/collector"
	"fxnews/forecast"
	"fxnews/rates"
)

// Deps bundles the collaborators the HTTP layer serves. Nil fields are
// allowed: the corresponding endpoints answer with a configuration
// failure instead of panicking.
type Deps struct {
	Collector *collector.NewsCollector
	Cache     *cache.Cache
	Generator forecast.Generator
	Rates     *rates.Client
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterNewsRoutes(r, deps.Collector, deps.Cache)
	RegisterForecastRoutes(r, deps.Generator, deps.Rates)
	RegisterRatesRoutes(r, deps.Rates)
	RegisterHealthRoutes(r)
	return r
}
