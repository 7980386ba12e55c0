package handler

// Response helpers: every handler sends JSON through writeJSON and maps
// domain errors through writeError, so all endpoints share one error shape:
//
//	{"error": "not_found", "message": "user not found with id abc123"}
//
// The mapping from apperror kinds to HTTP status codes lives here and ONLY
// here — the service layer knows nothing about HTTP, and the gRPC server has
// its own equivalent table. Keeping both tables keyed off the same sentinels
// is what keeps the two façades consistent.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/account-service/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // machine-readable kind, e.g. "not_found"
	Message string `json:"message"` // human-readable description
}

// writeJSON sends a JSON response with the given status code. Headers and
// status must be set before the first body write.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already went out; logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a service error to an HTTP status and sends it.
//
// Unknown errors become a generic 500 — raw error text can contain SQL,
// bucket names, or file paths and never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusBadRequest
			errorType = "invalid_credentials"
		case errors.Is(err, apperror.ErrPayloadTooLarge):
			status = http.StatusBadRequest
			errorType = "payload_too_large"
		case errors.Is(err, apperror.ErrInvalidImage):
			status = http.StatusBadRequest
			errorType = "invalid_image"
		case errors.Is(err, apperror.ErrUnauthenticated),
			errors.Is(err, apperror.ErrTokenExpired):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
			errorType = "conflict"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
