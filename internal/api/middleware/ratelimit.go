package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Limiter is satisfied by rate.QueueRateLimiter.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}

// RateLimitPerUser throttles authenticated users through limiter. A nil
// limiter disables the check and limiter errors let the request through.
func RateLimitPerUser(limiter Limiter, retryAfter time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return next(c)
			}

			ok, err := limiter.Allow(c.Request().Context(), user.UUID)
			if err != nil {
				_ = log.Error("Rate limiter failed for user %s", err, user.UUID)
				return next(c)
			}
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
