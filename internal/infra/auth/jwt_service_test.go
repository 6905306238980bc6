package auth

import (
	"testing"
	"time"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	principal := entity.UserPrincipal(uuid.New())

	accessToken, refreshToken, err := jwtService.GenerateTokens(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	got, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, principal, got)

	got, err = jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, principal, got)

	assert.Equal(t, time.Minute, jwtService.AccessTokenDuration())
}

func TestJWTService_AdminKindSurvivesRoundTrip(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	admin := entity.AdminPrincipal(uuid.New())
	token, err := jwtService.GenerateAccessToken(admin)
	require.NoError(t, err)

	got, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)

	_, isUser := got.AsUser()
	assert.False(t, isUser)
	adminID, isAdmin := got.AsAdmin()
	assert.True(t, isAdmin)
	assert.Equal(t, admin.ID, adminID)
}

func TestJWTService_RejectsTokenOfWrongType(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(entity.UserPrincipal(uuid.New()))
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	token, err := impl.GenerateAccessToken(entity.UserPrincipal(uuid.New()))
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = impl.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	principal, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.True(t, principal.IsZero())
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_RejectsEmptyPrincipal(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, _, err = jwtService.GenerateTokens(entity.Principal{})
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
