package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spacesedan/sentiment-api/internal/metrics"
	"github.com/spacesedan/sentiment-api/internal/models"
)

// Middleware rejects requests over the limiter's allowance with 429 before
// the handler runs. Clients are keyed by remote address.
func Middleware(limiter *Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				slog.Warn("[RateLimit] Request rejected",
					slog.String("client", c.RealIP()),
					slog.String("path", c.Path()))
				metrics.RateLimitRejections.WithLabelValues(c.Path()).Inc()
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error: "Rate limit exceeded. Try again later.",
				})
			}
			return next(c)
		}
	}
}
