package handler

import (
	"net/http"
	"testing"

	"cashmemo/config"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_AdminLogin_SetsCookie(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: &config.Config{Auth: &config.AuthConfig{AdminCookieName: "console", SecureCookie: true}},
	})

	authUC.EXPECT().
		AdminLogin(mock.Anything, &usecase.AdminLoginInput{Email: "root@example.com", Password: "secret"}).
		Return(&usecase.AdminAuthOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
			Admin:        &entity.Admin{ID: uuid.New(), Email: "root@example.com"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/admin/auth/login", `{"email":"root@example.com","password":"secret"}`, entity.Principal{})

	require.NoError(t, h.AdminLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "console", cookies[0].Name)
	assert.Equal(t, "access", cookies[0].Value)
	assert.Equal(t, 900, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
}

func TestAuthHandler_AdminLogout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})

	c, rec := newTestContext(http.MethodPost, "/admin/auth/logout", "", entity.Principal{})

	require.NoError(t, h.AdminLogout(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_AdminLogin_InvalidCredentials(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	authUC.EXPECT().AdminLogin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/admin/auth/login", `{"email":"root@example.com","password":"wrong"}`, entity.Principal{})

	assert.ErrorIs(t, h.AdminLogin(c), domainerrors.ErrInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Register_ValidatesMobile(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})

	c, _ := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Mina","email":"mina@example.com","mobile":"12345","password":"Secret123!","shop_name":"Mina Boutique"}`,
		entity.Principal{})

	err := h.Register(c)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "mobile")
}
