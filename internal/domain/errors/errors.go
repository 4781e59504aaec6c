package errors

import (
	"net/http"

	"calbridge/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the original
// under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	root := e
	if e.parent != nil {
		root = e.parent
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    root,
	}
}

// Is matches copies made by WithDetails against their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.parent != nil && e.parent == t)
}

// Predefined error types
var (
	// OAuth and session errors
	ErrTokenExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_EXCHANGE_FAILED",
		"Authorization code exchange failed",
		"",
	)

	ErrRefreshFailed = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_FAILED",
		"Failed to refresh token",
		"",
	)

	ErrMissingCalendarKey = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CALENDAR_KEY",
		"Calendar key header is missing",
		"",
	)

	// Credential cipher errors
	ErrEncryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENCRYPTION_FAILED",
		"Credential encryption failed",
		"",
	)

	ErrDecryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"DECRYPTION_FAILED",
		"Credential decryption failed",
		"",
	)

	// Runner errors
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"Invalid argument",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"Invalid action",
		"",
	)

	ErrProviderError = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_ERROR",
		"Calendar provider error",
		"",
	)

	ErrProviderAuth = NewBaseError(
		http.StatusUnauthorized,
		"PROVIDER_AUTH_FAILED",
		"Calendar provider rejected the credentials",
		"",
	)

	// Time assistant errors
	ErrInvalidTimezone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIMEZONE",
		"Unknown time zone",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
