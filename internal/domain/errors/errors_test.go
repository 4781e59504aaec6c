package errors

import (
	"net/http"
	"testing"

	"calbridge/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrProviderError.WithDetails("Not Found")

	assert.True(t, errors.Is(detailed, ErrProviderError))
	assert.False(t, errors.Is(detailed, ErrProviderAuth))
	assert.Equal(t, "Not Found", detailed.Details())
	assert.Equal(t, http.StatusBadGateway, detailed.HTTPCode())
	assert.Equal(t, "Calendar provider error: Not Found", detailed.Error())

	again := detailed.WithDetails("Gone")
	assert.True(t, errors.Is(again, ErrProviderError))
}

func TestBaseError_AsAppErrorThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidArgument.WithDetails("eventId is required"), "run update")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_ARGUMENT", appErr.ErrorCode())
	assert.Equal(t, "eventId is required", appErr.Details())
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))
}
