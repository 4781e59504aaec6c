package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "calbridge/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const unmatchedRoute = "unmatched"

// HTTPObserver records one finished HTTP request.
type HTTPObserver interface {
	ObserveHTTP(method, path, status string, elapsed time.Duration)
}

// MetricsMiddleware records latency and status per route template
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

// Handle times the request. Errors are recorded with the status the error handler will write.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}

		m.observer.ObserveHTTP(c.Request().Method, path, strconv.Itoa(status), time.Since(start))

		return err
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
