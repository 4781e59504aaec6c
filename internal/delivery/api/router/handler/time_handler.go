package handler

import (
	"net/http"

	"calbridge/internal/delivery/api/response"
	"calbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TimeHandlerParams holds dependencies for TimeHandler, injected by Fx.
type TimeHandlerParams struct {
	fx.In

	TimeUC usecase.TimeAssistantUsecase
}

// TimeHandler serves the time assistant
type TimeHandler struct {
	timeUC usecase.TimeAssistantUsecase
}

// NewTimeHandler is the constructor for TimeHandler
func NewTimeHandler(params TimeHandlerParams) *TimeHandler {
	return &TimeHandler{timeUC: params.TimeUC}
}

// CurrentTimeRequest represents the request body for the current time
type CurrentTimeRequest struct {
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

// CurrentTime returns the current time and weekday. The body is written bare for existing clients.
func (h *TimeHandler) CurrentTime(c echo.Context) error {
	var req CurrentTimeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid time request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	now, err := h.timeUC.CurrentTime(c.Request().Context(), req.Timezone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, now)
}
