package middleware

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const redactedValue = "REDACTED"

var redactedQueryParams = []string{"code", "state"}

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs every request when debug is on. The line is written after the handler, so it
// sees the calendar key resolved further down the chain.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var err error
		if m.debug {
			start := time.Now()
			defer func() {
				m.logRequest(c, start, err)
			}()
		}

		err = next(c)

		return err
	}
}

// logRequest writes one access log line per request.
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if key := deliverycontext.GetCalendarKeyFromContext(req.Context()); key != "" {
		fields = append(fields, slog.String("user_id", key))
	}

	if query := redactedQuery(req.URL.Query()); query != "" {
		fields = append(fields, slog.String("query", query))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// redactedQuery masks the OAuth callback parameters; code and state are single-use credentials.
func redactedQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}

	for _, name := range redactedQueryParams {
		if values.Has(name) {
			values.Set(name, redactedValue)
		}
	}

	return values.Encode()
}
