package apperror

import (
	"errors"
	"net/http"
)

// Kind tags the domain error variants the services produce.
type Kind string

const (
	KindValidation        Kind = "validation_failed"
	KindReferenceNotFound Kind = "reference_not_found"
	KindResourceNotFound  Kind = "resource_not_found"
	KindStore             Kind = "store_failure"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation reports a missing or out-of-range request field.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

// ReferenceNotFound reports that a referenced owning entity does not exist.
func ReferenceNotFound(message string) *AppError {
	return New(http.StatusNotFound, KindReferenceNotFound, message, nil)
}

// NotFound reports that the primary looked-up entity does not exist.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindResourceNotFound, message, nil)
}

// BadRequest covers malformed input at the HTTP boundary (bad ids, bad JSON).
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindValidation, message, nil)
}

// Store wraps an opaque backing-store failure; the message is never
// derived from the underlying error.
func Store(err error) *AppError {
	return New(http.StatusInternalServerError, KindStore, "Internal Server Error", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
