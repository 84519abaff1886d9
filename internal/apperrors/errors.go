package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that two records claim the same slot where only one is allowed.
var ErrDuplicate = errors.New("duplicate entry")

// ErrStoreUnavailable indicates that the record store could not be reached or timed out.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrEmptyResult indicates a valid query that matched no rows. It is only returned where
// an empty result cannot be represented by an empty slice, such as exports.
var ErrEmptyResult = errors.New("no matching records")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError builds an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError builds an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewStoreUnavailableError wraps a store failure so it matches ErrStoreUnavailable
// while keeping the underlying cause.
func NewStoreUnavailableError(message string, cause error) *AppError {
	if cause == nil {
		return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: ErrStoreUnavailable}
	}
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: fmt.Errorf("%w: %w", ErrStoreUnavailable, cause)}
}

// StatusCode maps an error to the HTTP status the handlers should reply with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
