package middleware

import (
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const (
	// calendarKeyField is the JSON field some clients wrap the key in
	calendarKeyField = "CALENDAR_KEY"

	contextKeyCalendarKey = "calendarKey"
)

// CalendarKeyMiddleware resolves the caller's calendar key for the calendar routes.
// A missing key is not rejected here; the broker reports it.
type CalendarKeyMiddleware struct {
	header string
}

// NewCalendarKeyMiddleware is the constructor for CalendarKeyMiddleware.
func NewCalendarKeyMiddleware(cfg *config.Config) *CalendarKeyMiddleware {
	return &CalendarKeyMiddleware{header: cfg.HTTP.CalendarKeyHeader}
}

// Resolve stores the calendar key on the echo context for handlers and the rate limiter,
// and on the request context so use-case logs carry it.
func (m *CalendarKeyMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if key := ResolveCalendarKey(c.Request().Header, m.header); key != "" {
			c.Set(contextKeyCalendarKey, key)
			c.SetRequest(c.Request().WithContext(deliverycontext.WithCalendarKey(c.Request().Context(), key)))
		}

		return next(c)
	}
}

// GetCalendarKey returns the key stored by Resolve.
func GetCalendarKey(c echo.Context) (string, bool) {
	key, ok := c.Get(contextKeyCalendarKey).(string)

	return key, ok && key != ""
}

// ResolveCalendarKey reads the key from the named header, either raw or as {"CALENDAR_KEY": "..."}.
// Failing that, any header carrying such a JSON object is accepted.
func ResolveCalendarKey(header http.Header, name string) string {
	if value := strings.TrimSpace(header.Get(name)); value != "" {
		if key, ok := parseCalendarKeyJSON(value); ok {
			return key
		}
		if !strings.HasPrefix(value, "{") {
			return value
		}
	}

	for _, headerName := range slices.Sorted(maps.Keys(header)) {
		for _, value := range header[headerName] {
			if !strings.Contains(value, calendarKeyField) {
				continue
			}
			if key, ok := parseCalendarKeyJSON(value); ok {
				return key
			}
		}
	}

	return ""
}

func parseCalendarKeyJSON(value string) (string, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(value)), &payload); err != nil {
		return "", false
	}

	key, ok := payload[calendarKeyField].(string)
	key = strings.TrimSpace(key)

	return key, ok && key != ""
}
