// Package apperr defines the error type handlers hand to the central error
// handler. It carries the HTTP status the boundary should answer with and
// keeps the underlying cause for server-side logging only.
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type that leaves the service layer.
type AppError struct {
	// Code is a machine-readable identifier (e.g. "NOT_FOUND").
	Code string
	// Message is safe to show on the error page.
	Message string
	// HTTPStatus is the response status code.
	HTTPStatus int
	// Cause is the underlying error, logged but never rendered.
	Cause error
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows errors.Is and errors.As to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// ========================================
// CLIENT ERRORS (4xx)
// ========================================

// NotFound creates a 404 AppError for a named resource.
//
//	apperr.NotFound("Author") // "Author not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// BadRequest creates a 400 AppError for a request that could not be read.
func BadRequest(msg string, cause error) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Cause:      cause,
	}
}

// ========================================
// SERVER ERRORS (5xx)
// ========================================

// Internal creates a 500 AppError wrapping an unexpected server-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ========================================
// HELPERS
// ========================================

// As extracts the *AppError from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err carries the not-found marker.
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}

// Resolve maps any error to an AppError. Errors that already carry one keep
// it; everything else is treated as a store or programming failure.
func Resolve(err error) *AppError {
	if ae := As(err); ae != nil {
		return ae
	}
	return Internal(err)
}
