package context

import (
	"context"
	"log/slog"

	"cashmemo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the caller on both the echo context and the request
// context, and tags the request logger so service logs name the seller or admin.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)

	ctx := WithPrincipal(c.Request().Context(), principal)
	ctx = WithLogAttrs(ctx,
		slog.String("principal_kind", string(principal.Kind)),
		slog.String("principal_id", principal.ID.String()))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetPrincipal reads the caller stored by an auth guard.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)
	if !ok || principal.IsZero() {
		return entity.Principal{}, false
	}

	return principal, true
}

// WithPrincipal returns a new context carrying the caller.
func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext extracts the caller from a standard context.
func PrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(entity.Principal)

	return principal, ok && !principal.IsZero()
}
