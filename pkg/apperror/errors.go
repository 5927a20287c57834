package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies domain failures independently of the HTTP status
type Kind string

const (
	KindDuplicateName Kind = "duplicate_name"
	KindStoreRead     Kind = "store_read"
	KindStoreWrite    Kind = "store_write"
	KindQRGeneration  Kind = "qr_generation"
	KindInvalidRange  Kind = "invalid_range"
	KindInvalidAmount Kind = "invalid_amount"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches errors of the same Kind, so wrapped copies of a sentinel
// compare equal to it under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Kind != "" {
		return e.Kind == t.Kind
	}
	return e == t
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}

	ErrDuplicateName = &AppError{Code: http.StatusConflict, Kind: KindDuplicateName, Message: "Product name already exists"}
	ErrStoreRead     = &AppError{Code: http.StatusInternalServerError, Kind: KindStoreRead, Message: "Failed to read local store"}
	ErrStoreWrite    = &AppError{Code: http.StatusInternalServerError, Kind: KindStoreWrite, Message: "Failed to write local store"}
	ErrQRGeneration  = &AppError{Code: http.StatusBadGateway, Kind: KindQRGeneration, Message: "Failed to generate QR code"}
	ErrInvalidRange  = &AppError{Code: http.StatusUnprocessableEntity, Kind: KindInvalidRange, Message: "Invalid amount range"}
	ErrInvalidAmount = &AppError{Code: http.StatusUnprocessableEntity, Kind: KindInvalidAmount, Message: "Amount must be greater than zero"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap returns a copy of a kinded sentinel carrying a cause
func Wrap(kind *AppError, cause error) *AppError {
	return &AppError{
		Code:    kind.Code,
		Kind:    kind.Kind,
		Message: kind.Message,
		cause:   cause,
	}
}

// Wrapf is Wrap with a more specific message
func Wrapf(kind *AppError, cause error, format string, args ...interface{}) *AppError {
	e := Wrap(kind, cause)
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidRangeError reports a rejected bulk range with field details
func NewInvalidRangeError(fieldErrors []FieldError) *AppError {
	e := Wrap(ErrInvalidRange, nil)
	e.Errors = fieldErrors
	return e
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
