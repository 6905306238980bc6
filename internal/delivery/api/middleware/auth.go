package middleware

import (
	"strings"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards the seller API and the admin console.
type AuthMiddleware struct {
	tokenSvc        service.TokenService
	adminCookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := "admin_token"
	if cfg != nil && cfg.Auth != nil && cfg.Auth.AdminCookieName != "" {
		cookieName = cfg.Auth.AdminCookieName
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, adminCookieName: cookieName}
}

// AdminCookieName is the cookie AdminGuard falls back to.
func (m *AuthMiddleware) AdminCookieName() string {
	return m.adminCookieName
}

// UserGuard admits seller access tokens sent as Bearer tokens.
func (m *AuthMiddleware) UserGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing or malformed")
		}

		principal, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		if _, isUser := principal.AsUser(); !isUser {
			return domainerrors.ErrForbidden
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// AdminGuard admits admin access tokens sent as Bearer tokens or in the admin cookie.
func (m *AuthMiddleware) AdminGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			cookie, err := c.Cookie(m.adminCookieName)
			if err != nil || cookie.Value == "" {
				return domainerrors.ErrUnauthorized
			}
			token = cookie.Value
		}

		principal, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		if _, isAdmin := principal.AsAdmin(); !isAdmin {
			return domainerrors.ErrForbidden
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}

// GetUserID returns the seller id set by UserGuard.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}

	return principal.AsUser()
}

// GetAdminID returns the administrator id set by AdminGuard.
func GetAdminID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}

	return principal.AsAdmin()
}
