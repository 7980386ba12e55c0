// Package apperror defines the error kinds shared by the service layer and
// both transport façades.
//
// The service layer returns these; the HTTP handlers map them to status codes
// and the gRPC server maps them to grpc codes. Neither façade invents its own
// error classification — that keeps the two surfaces consistent.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap them in an *AppError (via the constructors below) so a
// human-readable message travels with the kind. Check with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrTokenExpired       = errors.New("token expired")
	ErrPayloadTooLarge    = errors.New("payload too large")
	ErrInvalidImage       = errors.New("invalid image")
)

type AppError struct {
	Err     error  // sentinel kind
	Message string // human-readable, safe to show clients
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// InvalidCredentials always carries the same message regardless of whether
// the email was unknown or the password wrong, so callers cannot probe which
// emails are registered.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "Invalid credentials",
	}
}

func Unauthenticated(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: message,
	}
}

func TokenExpired() *AppError {
	return &AppError{
		Err:     ErrTokenExpired,
		Message: "token expired",
	}
}

func PayloadTooLarge(message string) *AppError {
	return &AppError{
		Err:     ErrPayloadTooLarge,
		Message: message,
	}
}

func InvalidImage(message string) *AppError {
	return &AppError{
		Err:     ErrInvalidImage,
		Message: message,
	}
}
