package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"calbridge/internal/delivery/api/middleware"
	"calbridge/internal/delivery/api/response"
	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/service"
	"calbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CalendarHandlerParams holds dependencies for CalendarHandler, injected by Fx.
type CalendarHandlerParams struct {
	fx.In

	Broker usecase.CalendarBrokerUsecase
	QRCode service.QRCodeService
	Logger *slog.Logger
}

// CalendarHandler serves the authorization callback and the calendar operations
type CalendarHandler struct {
	broker usecase.CalendarBrokerUsecase
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler
func NewCalendarHandler(params CalendarHandlerParams) *CalendarHandler {
	return &CalendarHandler{
		broker: params.Broker,
		qrcode: params.QRCode,
		logger: params.Logger,
	}
}

// AuthorizationCallback completes consent and redirects to the success or failure page
func (h *CalendarHandler) AuthorizationCallback(c echo.Context) error {
	target := h.broker.HandleAuthorizationCallback(c.Request().Context(), c.QueryParam("code"), c.QueryParam("state"))

	return c.Redirect(http.StatusFound, target)
}

// Operate runs one calendar action for the caller's calendar key
func (h *CalendarHandler) Operate(c echo.Context) error {
	req, err := decodeActionRequest(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calendar request body")
	}

	key, _ := middleware.GetCalendarKey(c)

	outcome, err := h.broker.HandleCalendarOperation(c.Request().Context(), key, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if outcome.NeedsAuth() {
		return response.AuthRequired(c, outcome.AuthURL)
	}

	return response.Success(c, http.StatusOK, outcome.Result)
}

// SignOut forgets the caller's session
func (h *CalendarHandler) SignOut(c echo.Context) error {
	key, _ := middleware.GetCalendarKey(c)

	if err := h.broker.SignOut(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AuthorizationQR renders the caller's consent URL as a PNG QR code
func (h *CalendarHandler) AuthorizationQR(c echo.Context) error {
	key, _ := middleware.GetCalendarKey(c)

	authURL, err := h.broker.AuthorizationURL(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcode.GenerateLinkQR(authURL)
	if err != nil {
		return errors.Wrap(err, "render authorization qr code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// decodeActionRequest accepts the request object itself or a JSON string holding it.
func decodeActionRequest(body io.Reader) (*entity.ActionRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, errors.WithStack(err)
		}
		raw = []byte(inner)
	}

	var req entity.ActionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &req, nil
}
