package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// For budgets and transactions this is an expected branch, not a failure.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMalformedInput indicates a value that could not be sanitized into a usable
// number or date (e.g. a budget limit of "abc").
var ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrValidation)

// ErrAuthRequired indicates that no authenticated user is available for the call.
var ErrAuthRequired = errors.New("authentication required")

// ErrUnauthorized indicates that the supplied credential was rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated user may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrTransport indicates a network or backend failure. It is fatal to the
// current operation and must never be replaced by a default value.
var ErrTransport = errors.New("transport error")

// ErrStaleResult indicates that a newer request superseded the one that produced a result.
var ErrStaleResult = errors.New("stale result discarded")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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

// NewTransportError wraps cause so that errors.Is(err, ErrTransport) holds.
func NewTransportError(op string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, ErrTransport)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, cause)
}
