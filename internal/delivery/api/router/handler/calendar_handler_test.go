package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calbridge/config"
	"calbridge/internal/delivery/api/middleware"
	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	mockService "calbridge/internal/mocks/service"
	mockUsecase "calbridge/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAuthURL = "https://accounts.google.com/o/oauth2/v2/auth?client_id=client-id&state=signed"

type calendarHandlerFixture struct {
	e      *echo.Echo
	broker *mockUsecase.MockCalendarBrokerUsecase
	qrcode *mockService.MockQRCodeService
}

func newCalendarHandlerFixture(t *testing.T) *calendarHandlerFixture {
	t.Helper()

	f := &calendarHandlerFixture{
		e:      echo.New(),
		broker: mockUsecase.NewMockCalendarBrokerUsecase(t),
		qrcode: mockService.NewMockQRCodeService(t),
	}

	h := NewCalendarHandler(CalendarHandlerParams{
		Broker: f.broker,
		QRCode: f.qrcode,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	f.e.GET("/api/calendar", h.AuthorizationCallback)
	g := f.e.Group("/api/calendar", middleware.NewCalendarKeyMiddleware(cfg).Resolve)
	g.POST("", h.Operate)
	g.DELETE("/session", h.SignOut)
	g.GET("/auth/qr", h.AuthorizationQR)

	return f
}

func (f *calendarHandlerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func calendarPost(body, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/calendar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set("X-Calendar-Key", key)
	}

	return req
}

func TestCalendarHandler_AuthorizationCallback(t *testing.T) {
	f := newCalendarHandlerFixture(t)
	f.broker.EXPECT().HandleAuthorizationCallback(mock.Anything, "code-1", "signed").Return("/auth_s.html")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/calendar?code=code-1&state=signed", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth_s.html", rec.Header().Get(echo.HeaderLocation))
}

func TestCalendarHandler_Operate(t *testing.T) {
	want := &entity.ActionRequest{Action: entity.ActionList, Query: "standup"}

	tests := []struct {
		name string
		body string
		key  string
	}{
		{name: "json object", body: `{"action":"list","q":"standup"}`, key: "user-1"},
		{name: "double encoded", body: `"{\"action\":\"list\",\"q\":\"standup\"}"`, key: "user-1"},
		{name: "json key header", body: `{"action":"list","q":"standup"}`, key: `{"CALENDAR_KEY":"user-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalendarHandlerFixture(t)
			f.broker.EXPECT().HandleCalendarOperation(mock.Anything, "user-1", want).Return(&entity.OperationOutcome{
				Result: &entity.ActionResult{Kind: entity.ResultNoEvents, Message: entity.NoEventsMessage},
			}, nil)

			rec := f.do(calendarPost(tt.body, tt.key))
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data entity.ActionResult `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, entity.ResultNoEvents, body.Data.Kind)
			assert.Equal(t, entity.NoEventsMessage, body.Data.Message)
		})
	}
}

func TestCalendarHandler_OperateNeedsAuth(t *testing.T) {
	f := newCalendarHandlerFixture(t)
	f.broker.EXPECT().HandleCalendarOperation(mock.Anything, "user-1", mock.Anything).
		Return(&entity.OperationOutcome{AuthURL: testAuthURL}, nil)

	rec := f.do(calendarPost(`{"action":"add"}`, "user-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"authUrl": testAuthURL}, body)
}

func TestCalendarHandler_OperateErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing key", err: domainerrors.ErrMissingCalendarKey, wantStatus: http.StatusBadRequest, wantCode: "MISSING_CALENDAR_KEY"},
		{name: "refresh failed", err: domainerrors.ErrRefreshFailed, wantStatus: http.StatusUnauthorized, wantCode: "REFRESH_FAILED"},
		{name: "invalid action", err: domainerrors.ErrInvalidAction.WithDetails("unsupported action: archive"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ACTION"},
		{name: "provider", err: domainerrors.ErrProviderError.WithDetails("Not Found"), wantStatus: http.StatusBadGateway, wantCode: "PROVIDER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalendarHandlerFixture(t)
			f.broker.EXPECT().HandleCalendarOperation(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := f.do(calendarPost(`{"action":"archive"}`, "user-1"))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestCalendarHandler_OperateRejectsMalformedBody(t *testing.T) {
	f := newCalendarHandlerFixture(t)

	rec := f.do(calendarPost(`{"action":`, "user-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCalendarHandler_SignOut(t *testing.T) {
	f := newCalendarHandlerFixture(t)
	f.broker.EXPECT().SignOut(mock.Anything, "user-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/calendar/session", nil)
	req.Header.Set("X-Calendar-Key", "user-1")

	assert.Equal(t, http.StatusNoContent, f.do(req).Code)
}

func TestCalendarHandler_AuthorizationQR(t *testing.T) {
	f := newCalendarHandlerFixture(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.broker.EXPECT().AuthorizationURL(mock.Anything, "user-1").Return(testAuthURL, nil)
	f.qrcode.EXPECT().GenerateLinkQR(testAuthURL).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/auth/qr", nil)
	req.Header.Set("X-Calendar-Key", "user-1")
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCalendarHandler_AuthorizationQRWithoutKey(t *testing.T) {
	f := newCalendarHandlerFixture(t)
	f.broker.EXPECT().AuthorizationURL(mock.Anything, "").Return("", domainerrors.ErrMissingCalendarKey)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/calendar/auth/qr", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeActionRequest(t *testing.T) {
	req, err := decodeActionRequest(strings.NewReader(`  "{\"action\":\"delete\",\"eventId\":\"evt-1\"}"  `))
	require.NoError(t, err)
	assert.Equal(t, &entity.ActionRequest{Action: entity.ActionDelete, EventID: "evt-1"}, req)

	_, err = decodeActionRequest(strings.NewReader(`"not json"`))
	assert.Error(t, err)

	_, err = decodeActionRequest(strings.NewReader(``))
	assert.Error(t, err)
}
