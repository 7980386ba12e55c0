// Package handler implements the HTTP façade.
//
// Handlers only translate between HTTP shapes (multipart forms, JSON bodies,
// bearer tokens) and IdentityService calls. No business rule lives here; an
// equivalent request through the gRPC façade must behave identically.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/auth"
	"github.com/sakif/account-service/internal/model"
	"github.com/sakif/account-service/internal/service"
)

// maxUploadBytes bounds the multipart form we are willing to parse. It
// matches the asset pipeline's 50 MB ceiling, with headroom for text fields.
const maxUploadBytes = 50*1024*1024 + 1024*1024

// AccountHandler serves the /auth routes.
type AccountHandler struct {
	identity *service.IdentityService
	logger   *slog.Logger
}

// NewAccountHandler creates an AccountHandler. The service is injected; the
// handler never constructs its own dependencies.
func NewAccountHandler(identity *service.IdentityService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{identity: identity, logger: logger}
}

// profileResponse is the client-facing shape of a user record. The password
// hash is structurally absent — it cannot leak by accident.
type profileResponse struct {
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	Surname         string  `json:"surname"`
	DisplayName     string  `json:"displayName"`
	Email           string  `json:"email"`
	TelephoneNumber string  `json:"telephoneNumber"`
	LineID          *string `json:"lineId"`
	ProfileImage    *string `json:"profileImage"`
}

func toProfileResponse(u *model.User) profileResponse {
	return profileResponse{
		UserID:          u.ID,
		Name:            u.Name,
		Surname:         u.Surname,
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		TelephoneNumber: u.TelephoneNumber,
		LineID:          u.LineID,
		ProfileImage:    u.ProfileImage,
	}
}

// HandleRegister creates a new account.
//
// HTTP: POST /auth/register (multipart/form-data)
// Fields: name, surname, displayName, email, telephoneNumber, lineId,
// password, and an optional "profileImage" file part.
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, apperror.ValidationFailed("body", "expected multipart form data"))
		return
	}

	input := service.RegisterInput{
		Name:            r.FormValue("name"),
		Surname:         r.FormValue("surname"),
		DisplayName:     r.FormValue("displayName"),
		Email:           r.FormValue("email"),
		TelephoneNumber: r.FormValue("telephoneNumber"),
		Password:        r.FormValue("password"),
	}
	if lineID := r.FormValue("lineId"); lineID != "" {
		input.LineID = &lineID
	}

	data, name, err := readImagePart(r)
	if err != nil {
		writeError(w, err)
		return
	}
	input.ImageData = data
	input.ImageName = name

	userID, err := h.identity.Register(r.Context(), input)
	if err != nil {
		h.logger.Warn("registration failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// HandleLogin authenticates and returns a bearer token.
//
// HTTP: POST /auth/login (JSON {email, password})
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Login successful",
		"token":     result.Token,
		"userId":    result.UserID,
		"expiresAt": result.ExpiresAt.Unix(),
	})
}

// HandleGetProfile returns the authenticated user's profile.
//
// HTTP: GET /auth/profile (bearer token)
func (h *AccountHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("user ID not provided"))
		return
	}

	user, err := h.identity.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

// HandleUpdateProfile applies a partial profile update.
//
// HTTP: PUT /auth/profile (bearer token, multipart/form-data)
// Only non-empty fields overwrite stored values; an optional "profileImage"
// file part replaces the current image.
func (h *AccountHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("user ID not provided"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, apperror.ValidationFailed("body", "expected multipart form data"))
		return
	}

	input := service.UpdateProfileInput{
		Name:            r.FormValue("name"),
		Surname:         r.FormValue("surname"),
		DisplayName:     r.FormValue("displayName"),
		TelephoneNumber: r.FormValue("telephoneNumber"),
		LineID:          r.FormValue("lineId"),
	}

	data, name, err := readImagePart(r)
	if err != nil {
		writeError(w, err)
		return
	}
	input.ImageData = data
	input.ImageName = name

	user, err := h.identity.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		h.logger.Warn("profile update failed",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    toProfileResponse(user),
	})
}

// HandleChangePassword rotates the password after verifying the current one.
//
// HTTP: PUT /auth/change-password (bearer token, JSON {currentPassword, newPassword})
func (h *AccountHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("user ID not provided"))
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	if err := h.identity.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Password changed successfully",
	})
}

// HandleDeleteProfile destroys the authenticated account and its asset.
//
// HTTP: DELETE /auth/profile (bearer token)
func (h *AccountHandler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("user ID not provided"))
		return
	}

	if err := h.identity.DeleteProfile(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User deleted successfully",
	})
}

// HandleLogout records the logout timestamp. The presented token stays valid
// until its natural expiry — this is bookkeeping, not revocation.
//
// HTTP: POST /auth/logout (bearer token)
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated("user ID not provided"))
		return
	}

	if err := h.identity.Logout(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged out successfully",
	})
}

// readImagePart reads the optional "profileImage" file part from a parsed
// multipart form. Returns (nil, "", nil) when no file was sent.
func readImagePart(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("profileImage")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		return nil, "", apperror.ValidationFailed("profileImage", "could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, "", apperror.ValidationFailed("profileImage", "could not read uploaded file")
	}

	return data, headerFilename(header), nil
}

func headerFilename(header *multipart.FileHeader) string {
	if header == nil {
		return ""
	}
	return header.Filename
}
