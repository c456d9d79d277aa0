package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying a stable kind code and the HTTP
// status it maps to at the edge.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches an underlying cause to a copy of a sentinel error.
func Wrap(base *Error, err error) *Error {
	clone := *base
	clone.Err = err
	return &clone
}

// WithMessage returns a copy of a sentinel with an overridden message.
func WithMessage(base *Error, message string) *Error {
	clone := *base
	clone.Message = message
	return &clone
}

var (
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "invalid input")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrGone         = New("GONE", http.StatusGone, "resource is no longer available")
	ErrStore        = New("STORE_FAILURE", http.StatusInternalServerError, "storage failure")
)

// FromError normalises any error into an *Error, treating unknown errors as
// store failures.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(ErrStore, err)
}

// Is reports whether err carries the same kind code as target.
func Is(err error, target *Error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
