// Package service contains the identity business logic.
//
// IdentityService is the single owner of the account lifecycle. Both the
// HTTP handlers and the gRPC server are thin adapters over it:
//
//	HTTP façade ─┐
//	             ├→ IdentityService → UserRepository (DB)
//	gRPC façade ─┘        ├→ TokenService / PasswordService (credentials)
//	                      └→ asset.Manager (profile images)
//
// Keeping one implementation behind two transports is the point of this
// layout — the previous generation of this service re-implemented every
// operation per transport and the two copies drifted.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/asset"
	"github.com/sakif/account-service/internal/auth"
	"github.com/sakif/account-service/internal/model"
	"github.com/sakif/account-service/internal/repository"
)

// IdentityService handles registration, authentication, and profile
// mutations. All dependencies are injected; there are no package-level
// singletons, so tests swap in fakes freely.
type IdentityService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	assets    *asset.Manager
	logger    *slog.Logger
}

// NewIdentityService creates an IdentityService with all required
// dependencies.
func NewIdentityService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	assets *asset.Manager,
	logger *slog.Logger,
) *IdentityService {
	return &IdentityService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		assets:    assets,
		logger:    logger,
	}
}

// RegisterInput carries everything Register needs, transport-agnostic.
// ImageData is the raw uploaded bytes (nil when no image was sent);
// ImageName is the client-supplied filename used in the object key.
type RegisterInput struct {
	Name            string
	Surname         string
	DisplayName     string
	Email           string
	TelephoneNumber string
	LineID          *string
	Password        string
	ImageData       []byte
	ImageName       string
}

// UpdateProfileInput carries a partial profile update. Empty strings mean
// "leave unchanged" — a field cannot be cleared to empty through this
// operation, only replaced with a non-empty value. This mirrors the
// documented merge-non-empty contract and is a known limitation, not an
// oversight.
type UpdateProfileInput struct {
	Name            string
	Surname         string
	DisplayName     string
	TelephoneNumber string
	LineID          string
	ImageData       []byte
	ImageName       string
}

// LoginResult bundles what a successful login returns.
type LoginResult struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// Register creates a new account and returns its userID.
//
// Validation happens before any expensive work: a whitespace-only display
// name fails with ErrValidation and leaves no record, no hash, no uploaded
// asset behind. Duplicate emails fail with ErrConflict.
//
// If an image is supplied it is stored before the record insert. An insert
// failure after a successful upload therefore orphans the object — accepted,
// since the alternative (insert first) would hand out records pointing at
// assets that may never materialize.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if strings.TrimSpace(in.DisplayName) == "" {
		return "", apperror.ValidationFailed("displayName", "Display name is required")
	}
	if in.Email == "" {
		return "", apperror.ValidationFailed("email", "Email is required")
	}
	if in.Password == "" {
		return "", apperror.ValidationFailed("password", "Password is required")
	}

	// Friendly pre-check; the unique index on email is the real arbiter for
	// concurrent registrations.
	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", apperror.Conflict("User already exists")
	case !errors.Is(err, apperror.ErrNotFound):
		return "", fmt.Errorf("service/identity: checking email %s: %w", in.Email, err)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("service/identity: hashing password: %w", err)
	}

	var profileImage *string
	if len(in.ImageData) > 0 {
		url, err := s.assets.Store(ctx, in.ImageData, in.ImageName)
		if err != nil {
			return "", fmt.Errorf("service/identity: storing profile image: %w", err)
		}
		profileImage = &url
	}

	lineID := in.LineID
	if lineID != nil && *lineID == "" {
		lineID = nil // empty string on the wire means absent, stored as NULL
	}

	user := &model.User{
		Email:           in.Email,
		PasswordHash:    hash,
		Name:            in.Name,
		Surname:         in.Surname,
		DisplayName:     strings.TrimSpace(in.DisplayName),
		TelephoneNumber: in.TelephoneNumber,
		LineID:          lineID,
		ProfileImage:    profileImage,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("service/identity: creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
	)

	return user.ID, nil
}

// Login authenticates by email and password and issues an access token.
//
// An unknown email and a wrong password both come back as
// ErrInvalidCredentials with identical client-facing text; only the log
// line distinguishes them.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.logger.Info("login failed: unknown email")
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("service/identity: looking up email: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			s.logger.Info("login failed: password mismatch",
				slog.String("userID", user.ID),
			)
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("service/identity: verifying password: %w", err)
	}

	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/identity: issuing token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return &LoginResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile returns the user record for userID. The password hash rides
// along inside the model but is excluded from every serialized shape.
func (s *IdentityService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service/identity: fetching user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies a partial update and returns the updated record.
//
// Image replacement order is fixed: upload the new object, then best-effort
// delete the old one, then persist the new URL. A failed upload therefore
// never destroys the only existing asset, and a failed delete only leaks an
// object (logged by the asset manager, not surfaced).
func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service/identity: fetching user %s: %w", userID, err)
	}

	if len(in.ImageData) > 0 {
		url, err := s.assets.Store(ctx, in.ImageData, in.ImageName)
		if err != nil {
			return nil, fmt.Errorf("service/identity: storing profile image: %w", err)
		}
		if user.ProfileImage != nil {
			s.assets.Delete(ctx, *user.ProfileImage)
		}
		user.ProfileImage = &url
	}

	// Merge non-empty fields only.
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Surname != "" {
		user.Surname = in.Surname
	}
	if strings.TrimSpace(in.DisplayName) != "" {
		user.DisplayName = strings.TrimSpace(in.DisplayName)
	}
	if in.TelephoneNumber != "" {
		user.TelephoneNumber = in.TelephoneNumber
	}
	if in.LineID != "" {
		lineID := in.LineID
		user.LineID = &lineID
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("service/identity: updating user %s: %w", userID, err)
	}

	s.logger.Info("profile updated", slog.String("userID", userID))

	return user, nil
}

// ChangePassword verifies the current password and replaces it with the new
// one. No complexity policy is enforced on the new password beyond it being
// present.
func (s *IdentityService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperror.ValidationFailed("newPassword", "New password is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service/identity: fetching user %s: %w", userID, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, currentPassword); err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			return &apperror.AppError{
				Err:     apperror.ErrInvalidCredentials,
				Message: "Current password is incorrect",
			}
		}
		return fmt.Errorf("service/identity: verifying current password: %w", err)
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("service/identity: hashing new password: %w", err)
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("service/identity: persisting new password for %s: %w", userID, err)
	}

	s.logger.Info("password changed", slog.String("userID", userID))

	return nil
}

// DeleteProfile destroys the account: asset first (best-effort), then the
// record. No soft delete — a deleted userID resolves to NotFound afterwards.
func (s *IdentityService) DeleteProfile(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service/identity: fetching user %s: %w", userID, err)
	}

	if user.ProfileImage != nil {
		s.assets.Delete(ctx, *user.ProfileImage)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("service/identity: deleting user %s: %w", userID, err)
	}

	s.logger.Info("user deleted", slog.String("userID", userID))

	return nil
}

// Logout records the logout time. It does NOT invalidate outstanding tokens —
// there is no revocation list, and issued tokens live out their natural
// 1-hour expiry.
func (s *IdentityService) Logout(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service/identity: fetching user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	user.LastLogoutAt = &now

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("service/identity: recording logout for %s: %w", userID, err)
	}

	s.logger.Info("user logged out", slog.String("userID", userID))

	return nil
}
