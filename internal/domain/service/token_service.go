package service

import (
	"time"

	"cashmemo/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Kind entity.PrincipalKind `json:"kind"`
	Type string               `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a principal.
	GenerateTokens(principal entity.Principal) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token.
	GenerateAccessToken(principal entity.Principal) (string, error)

	// ValidateAccessToken checks an access token and returns the principal it was issued to.
	ValidateAccessToken(tokenString string) (entity.Principal, error)

	// ValidateRefreshToken checks a refresh token and returns the principal it was issued to.
	ValidateRefreshToken(tokenString string) (entity.Principal, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
