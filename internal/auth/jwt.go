// Package auth holds the credential utilities: JWT issuance/validation and
// bcrypt password hashing. It knows nothing about HTTP or gRPC — both façades
// and the service layer consume it through small, injectable types.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sakif/account-service/internal/apperror"
)

// TokenTTL is the fixed lifetime of an access token. There is no refresh or
// revocation mechanism: an issued token is honored until this expiry, even if
// the user logs out in the meantime.
const TokenTTL = time.Hour

const issuer = "account-service"

// TokenService signs and validates JWT access tokens.
//
// Tokens are HS256-signed with a process-wide secret loaded once at startup.
// The user ID travels in the standard "sub" claim, so validation needs no
// database lookup.
type TokenService struct {
	secret []byte
	now    func() time.Time // injectable clock for expiry tests
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production
// (e.g. JWT_SECRET=$(openssl rand -hex 32)); short secrets are rejected.
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret), now: time.Now}, nil
}

// claims embeds jwt.RegisteredClaims; "sub" carries the user ID.
type claims struct {
	jwt.RegisteredClaims
}

// Generate creates and signs an access token for userID. It also returns the
// expiry time so callers can tell clients when the token dies instead of
// making them hard-code the 1-hour lifetime.
func (s *TokenService) Generate(userID string) (token string, expiresAt time.Time, err error) {
	now := s.now()
	expiresAt = now.Add(TokenTTL)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and verifies a token string, returning the userID from the
// "sub" claim.
//
// Failure modes are distinguished for the façades:
//   - apperror.ErrTokenExpired for tokens past their expiry
//   - apperror.ErrUnauthenticated for anything else (bad signature, wrong
//     issuer, wrong algorithm, garbage input)
//
// jwt.WithValidMethods pins HS256 so a crafted "alg" header can't downgrade
// verification.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperror.TokenExpired()
		}
		return "", apperror.Unauthenticated("invalid token")
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", apperror.Unauthenticated("invalid token claims")
	}

	if c.Subject == "" {
		return "", apperror.Unauthenticated("token has no subject")
	}

	return c.Subject, nil
}
