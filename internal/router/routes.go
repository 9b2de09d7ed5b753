package router

import (
	"github.com/labstack/echo/v4"

	"github.com/parthk02/zomato-recommender/internal/config"
	"github.com/parthk02/zomato-recommender/internal/handler"
	middlewarepkg "github.com/parthk02/zomato-recommender/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Meta      *handler.MetaHandler
	Recommend *handler.RecommendHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handlers.Meta.Health)
	e.GET("/cities", handlers.Meta.Cities)
	e.GET("/price-range", handlers.Meta.PriceRange)

	e.POST("/recommendations", handlers.Recommend.Recommend,
		middlewarepkg.RecommendRateLimiter(cfg.RateLimitRecommend))
}
