package middleware

import (
	"time"

	"calbridge/config"
	"calbridge/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle key keeps its token bucket
const limiterTTL = 15 * time.Minute

// NewCalendarRateLimiter limits requests per calendar key, or per client IP when the key is missing.
// It must run after CalendarKeyMiddleware.Resolve. A non-positive rate disables limiting.
func NewCalendarRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: limiterTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if key, ok := GetCalendarKey(c); ok {
				return "key:" + key, nil
			}

			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.BadRequest(c, "RATE_LIMIT_IDENTIFIER", "Unable to identify caller")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please slow down")
		},
	})
}
