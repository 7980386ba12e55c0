package apperror

import (
	"errors"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("user", "abc123"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("displayName", "Display name is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Conflict wraps ErrConflict",
			err:       Conflict("User already exists"),
			target:    ErrConflict,
			wantMatch: true,
		},
		{
			name:      "InvalidCredentials wraps ErrInvalidCredentials",
			err:       InvalidCredentials(),
			target:    ErrInvalidCredentials,
			wantMatch: true,
		},
		{
			name:      "TokenExpired wraps ErrTokenExpired",
			err:       TokenExpired(),
			target:    ErrTokenExpired,
			wantMatch: true,
		},
		{
			name:      "PayloadTooLarge wraps ErrPayloadTooLarge",
			err:       PayloadTooLarge("too big"),
			target:    ErrPayloadTooLarge,
			wantMatch: true,
		},
		{
			name:      "InvalidImage wraps ErrInvalidImage",
			err:       InvalidImage("not an image"),
			target:    ErrInvalidImage,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("user", "abc123"),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "InvalidCredentials does NOT match ErrUnauthenticated",
			err:       InvalidCredentials(),
			target:    ErrUnauthenticated,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorsIs_ThroughWrapping(t *testing.T) {
	// Service code wraps AppErrors with fmt.Errorf("...: %w", err); the kind
	// must survive the extra layer.
	wrapped := errorsJoinLike(NotFound("user", "xyz"))
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is should find ErrNotFound through a wrapping layer")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError through a wrapping layer")
	}
	if appErr.Message != "user not found with id xyz" {
		t.Errorf("Message = %q, want %q", appErr.Message, "user not found with id xyz")
	}
}

func errorsJoinLike(err error) error {
	return &wrapper{err: err}
}

type wrapper struct{ err error }

func (w *wrapper) Error() string { return "outer: " + w.err.Error() }
func (w *wrapper) Unwrap() error { return w.err }

func TestInvalidCredentials_UniformMessage(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable to clients.
	if InvalidCredentials().Message != "Invalid credentials" {
		t.Errorf("InvalidCredentials message = %q, want %q",
			InvalidCredentials().Message, "Invalid credentials")
	}
}
