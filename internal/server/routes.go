package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spacesedan/sentiment-api/internal/ratelimit"
)

// Process-wide default allowance, overridden on the analysis endpoints.
const (
	defaultPerDay  = 200
	defaultPerHour = 50

	analyzePerMinute = 10
	batchPerMinute   = 5
)

func (s *Server) registerRoutes() {
	var defaults, analyze, batch []echo.MiddlewareFunc
	if s.config.RateLimitEnabled {
		defaults = append(defaults, ratelimit.Middleware(
			ratelimit.NewLimiter(ratelimit.PerDay(defaultPerDay), ratelimit.PerHour(defaultPerHour))))
		analyze = append(analyze, ratelimit.Middleware(
			ratelimit.NewLimiter(ratelimit.PerMinute(analyzePerMinute))))
		batch = append(batch, ratelimit.Middleware(
			ratelimit.NewLimiter(ratelimit.PerMinute(batchPerMinute))))
	}

	// Observability endpoints (never rate limited)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.echo.GET("/health", s.handleHealth, defaults...)
	s.echo.POST("/analyze-sentiment", s.handleAnalyze, analyze...)
	s.echo.POST("/analyze-sentiment-batch", s.handleAnalyzeBatch, batch...)
}
