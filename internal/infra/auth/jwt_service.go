// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	tokenIssuer       = "cashmemo"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates a new access token and refresh token for a principal.
func (s *jwtService) GenerateTokens(principal entity.Principal) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.sign(principal, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.sign(principal, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) GenerateAccessToken(principal entity.Principal) (string, error) {
	return s.sign(principal, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

func (s *jwtService) ValidateAccessToken(tokenString string) (entity.Principal, error) {
	return s.parse(tokenString, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (entity.Principal, error) {
	return s.parse(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) sign(principal entity.Principal, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	if principal.IsZero() {
		return "", errors.New("cannot sign a token for an empty principal")
	}

	now := s.now()
	claims := service.Claims{
		Kind: principal.Kind,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parse verifies signature, expiry and token type, then rebuilds the principal.
// A token of the wrong type or kind is rejected even when its signature is valid.
func (s *jwtService) parse(tokenString, tokenType string, secret []byte) (entity.Principal, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return entity.Principal{}, errors.New("token is not valid")
	}

	if claims.Type != tokenType {
		return entity.Principal{}, errors.Errorf("unexpected token type %q", claims.Type)
	}

	kind, ok := entity.ParsePrincipalKind(string(claims.Kind))
	if !ok {
		return entity.Principal{}, errors.Errorf("unknown principal kind %q", claims.Kind)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "invalid token subject")
	}

	return entity.Principal{Kind: kind, ID: id}, nil
}
