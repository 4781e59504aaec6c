package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"calbridge/internal/delivery/api/response"
	domainerrors "calbridge/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "refresh failure",
			err:         errors.Wrap(domainerrors.ErrRefreshFailed, "oauth2: 503"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "REFRESH_FAILED",
			wantMessage: "Failed to refresh token",
		},
		{
			name:        "4xx keeps details",
			err:         domainerrors.ErrInvalidArgument.WithDetails("eventId and updateFields are required for update"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_ARGUMENT",
			wantMessage: "Invalid argument",
			wantDetails: "eventId and updateFields are required for update",
		},
		{
			name:        "5xx hides details",
			err:         domainerrors.ErrProviderError.WithDetails("backendError"),
			wantStatus:  http.StatusBadGateway,
			wantCode:    "PROVIDER_ERROR",
			wantMessage: "Calendar provider error",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/calendar", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
