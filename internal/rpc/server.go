// Package rpc implements the gRPC façade.
//
// Like the HTTP handlers, this layer only translates shapes: request messages
// in, IdentityService calls, response messages out. The status-code table in
// statusError is the gRPC twin of the HTTP handler's writeError — both key
// off the same apperror sentinels.
package rpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/model"
	"github.com/sakif/account-service/internal/rpc/accountpb"
	"github.com/sakif/account-service/internal/service"
)

// AccountServer implements accountpb.AccountServiceServer.
type AccountServer struct {
	accountpb.UnimplementedAccountServiceServer
	identity *service.IdentityService
	logger   *slog.Logger
}

// NewAccountServer creates the gRPC façade over the identity service.
func NewAccountServer(identity *service.IdentityService, logger *slog.Logger) *AccountServer {
	return &AccountServer{identity: identity, logger: logger}
}

// RegisterWith registers the account service on the given gRPC registrar.
func RegisterWith(s grpc.ServiceRegistrar, identity *service.IdentityService, logger *slog.Logger) {
	accountpb.RegisterAccountServiceServer(s, NewAccountServer(identity, logger))
}

// Register creates a new account.
func (s *AccountServer) Register(ctx context.Context, req *accountpb.RegisterRequest) (*accountpb.RegisterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "register request is required")
	}

	input := service.RegisterInput{
		Name:            req.GetName(),
		Surname:         req.GetSurname(),
		DisplayName:     req.GetDisplayName(),
		Email:           req.GetEmail(),
		TelephoneNumber: req.GetTelephoneNumber(),
		Password:        req.GetPassword(),
		ImageData:       req.GetProfileImage(),
		ImageName:       req.GetProfileImageName(),
	}
	if lineID := req.GetLineId(); lineID != "" {
		input.LineID = &lineID
	}

	userID, err := s.identity.Register(ctx, input)
	if err != nil {
		return nil, s.statusError(err, "Register")
	}

	return &accountpb.RegisterResponse{
		UserId:  userID,
		Message: "User registered successfully",
	}, nil
}

// Login authenticates and returns a token with its expiry.
func (s *AccountServer) Login(ctx context.Context, req *accountpb.LoginRequest) (*accountpb.LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "login request is required")
	}

	result, err := s.identity.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.statusError(err, "Login")
	}

	return &accountpb.LoginResponse{
		Token:     result.Token,
		UserId:    result.UserID,
		ExpiresAt: result.ExpiresAt.Unix(),
	}, nil
}

// GetProfile returns the profile for the requested user ID.
func (s *AccountServer) GetProfile(ctx context.Context, req *accountpb.GetProfileRequest) (*accountpb.ProfileResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	user, err := s.identity.GetProfile(ctx, req.GetUserId())
	if err != nil {
		return nil, s.statusError(err, "GetProfile")
	}

	return &accountpb.ProfileResponse{Profile: profileToProto(user)}, nil
}

// UpdateProfile applies a partial update; empty request fields are no-ops.
func (s *AccountServer) UpdateProfile(ctx context.Context, req *accountpb.UpdateProfileRequest) (*accountpb.ProfileResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	input := service.UpdateProfileInput{
		Name:            req.GetName(),
		Surname:         req.GetSurname(),
		DisplayName:     req.GetDisplayName(),
		TelephoneNumber: req.GetTelephoneNumber(),
		LineID:          req.GetLineId(),
		ImageData:       req.GetProfileImage(),
		ImageName:       req.GetProfileImageName(),
	}

	user, err := s.identity.UpdateProfile(ctx, req.GetUserId(), input)
	if err != nil {
		return nil, s.statusError(err, "UpdateProfile")
	}

	return &accountpb.ProfileResponse{
		Message: "Profile updated successfully",
		Profile: profileToProto(user),
	}, nil
}

// ChangePassword rotates the password after verifying the current one.
func (s *AccountServer) ChangePassword(ctx context.Context, req *accountpb.ChangePasswordRequest) (*accountpb.StatusResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	if err := s.identity.ChangePassword(ctx, req.GetUserId(), req.GetCurrentPassword(), req.GetNewPassword()); err != nil {
		return nil, s.statusError(err, "ChangePassword")
	}

	return &accountpb.StatusResponse{Message: "Password changed successfully"}, nil
}

// DeleteProfile destroys the account and its asset.
func (s *AccountServer) DeleteProfile(ctx context.Context, req *accountpb.DeleteProfileRequest) (*accountpb.StatusResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	if err := s.identity.DeleteProfile(ctx, req.GetUserId()); err != nil {
		return nil, s.statusError(err, "DeleteProfile")
	}

	return &accountpb.StatusResponse{Message: "User deleted successfully"}, nil
}

// Logout records the logout timestamp; issued tokens keep working until
// expiry.
func (s *AccountServer) Logout(ctx context.Context, req *accountpb.LogoutRequest) (*accountpb.StatusResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	if err := s.identity.Logout(ctx, req.GetUserId()); err != nil {
		return nil, s.statusError(err, "Logout")
	}

	return &accountpb.StatusResponse{Message: "Logged out successfully"}, nil
}

// statusError maps apperror kinds onto gRPC status codes.
//
// Anything unrecognized becomes codes.Internal with a generic message;
// internal error text (SQL, bucket names) never crosses the wire.
func (s *AccountServer) statusError(err error, method string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code := codes.Internal

		switch {
		case errors.Is(err, apperror.ErrValidation),
			errors.Is(err, apperror.ErrPayloadTooLarge),
			errors.Is(err, apperror.ErrInvalidImage):
			code = codes.InvalidArgument
		case errors.Is(err, apperror.ErrInvalidCredentials),
			errors.Is(err, apperror.ErrUnauthenticated),
			errors.Is(err, apperror.ErrTokenExpired):
			code = codes.Unauthenticated
		case errors.Is(err, apperror.ErrNotFound):
			code = codes.NotFound
		case errors.Is(err, apperror.ErrConflict):
			code = codes.AlreadyExists
		}

		return status.Error(code, appErr.Message)
	}

	s.logger.Error("rpc internal error",
		slog.String("method", method),
		slog.String("error", err.Error()),
	)
	return status.Error(codes.Internal, "internal error")
}

func profileToProto(u *model.User) *accountpb.Profile {
	p := &accountpb.Profile{
		UserId:          u.ID,
		Name:            u.Name,
		Surname:         u.Surname,
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		TelephoneNumber: u.TelephoneNumber,
	}
	if u.LineID != nil {
		p.LineId = *u.LineID
	}
	if u.ProfileImage != nil {
		p.ProfileImage = *u.ProfileImage
	}
	return p
}
