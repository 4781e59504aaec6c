package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(t *testing.T, debug bool, buf *bytes.Buffer, handler echo.HandlerFunc) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/calendar", handler)

	return e
}

func TestLoggerMiddleware_RedactsCallbackCredentials(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(t, true, &buf, func(c echo.Context) error {
		ctx := deliverycontext.WithCalendarKey(c.Request().Context(), "my-key")
		c.SetRequest(c.Request().WithContext(ctx))

		return c.Redirect(http.StatusFound, "/auth_s.html")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar?code=secret-code&state=signed-state&scope=email", nil))
	require.Equal(t, http.StatusFound, rec.Code)

	assert.NotContains(t, buf.String(), "secret-code")
	assert.NotContains(t, buf.String(), "signed-state")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "/api/calendar", line["route"])
	assert.Equal(t, "my-key", line["user_id"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), line["request_id"])
	assert.Equal(t, "code=REDACTED&scope=email&state=REDACTED", line["query"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(t, false, &buf, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/calendar", nil))

	assert.Empty(t, buf.String())
}
