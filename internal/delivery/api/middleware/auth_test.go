package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockSvc "cashmemo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardContext(header string, cookie *http.Cookie) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestUserGuard(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		setup    func(tokens *mockSvc.MockTokenService)
		wantErr  error
		wantUser bool
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "not a bearer token",
			header:  "Basic abc",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("bad").Return(entity.Principal{}, errors.New("expired"))
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "admin token rejected",
			header: "Bearer admin",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("admin").Return(entity.AdminPrincipal(uuid.New()), nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:   "seller token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("good").Return(entity.UserPrincipal(userID), nil)
			},
			wantUser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			guard := NewAuthMiddleware(tokens, &config.Config{})
			c := newGuardContext(tt.header, nil)

			err := guard.UserGuard(okHandler)(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			got, ok := GetUserID(c)
			assert.Equal(t, tt.wantUser, ok)
			assert.Equal(t, userID, got)
			_, isAdmin := GetAdminID(c)
			assert.False(t, isAdmin)
		})
	}
}

func TestAdminGuard_Cookie(t *testing.T) {
	adminID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken("cookie-token").Return(entity.AdminPrincipal(adminID), nil)

	guard := NewAuthMiddleware(tokens, &config.Config{Auth: &config.AuthConfig{AdminCookieName: "console"}})
	assert.Equal(t, "console", guard.AdminCookieName())

	c := newGuardContext("", &http.Cookie{Name: "console", Value: "cookie-token"})

	require.NoError(t, guard.AdminGuard(okHandler)(c))
	got, ok := GetAdminID(c)
	assert.True(t, ok)
	assert.Equal(t, adminID, got)
}

func TestAdminGuard_Rejections(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		guard := NewAuthMiddleware(mockSvc.NewMockTokenService(t), nil)
		assert.Equal(t, "admin_token", guard.AdminCookieName())

		err := guard.AdminGuard(okHandler)(newGuardContext("", nil))
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("seller token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("seller").Return(entity.UserPrincipal(uuid.New()), nil)
		guard := NewAuthMiddleware(tokens, nil)

		err := guard.AdminGuard(okHandler)(newGuardContext("Bearer seller", nil))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
