package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashmemo/internal/delivery/api/middleware"
	"cashmemo/internal/domain/entity"
	mockSvc "cashmemo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newRoutedEcho registers every route; handlers stay nil because the cases
// below only exercise routing and the guards.
func newRoutedEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	NewRouter(RouterParams{AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, nil)}).RegisterRoutes(e)

	return e, tokenSvc
}

func serve(e *echo.Echo, method, path, bearer string) int {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRouter_UnknownPublicPathIsNotFound(t *testing.T) {
	e, tokenSvc := newRoutedEcho(t)

	for _, path := range []string{
		"/api/v1/public",
		"/api/v1/public/nope",
		"/api/v1/public/shops/acme/nope/deeper",
	} {
		assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, path, ""), path)
	}

	tokenSvc.AssertNotCalled(t, "ValidateAccessToken", "")
}

func TestRouter_SellerNamespaceStillGuarded(t *testing.T) {
	e, tokenSvc := newRoutedEcho(t)

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/api/v1/products", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/api/v1/nope", ""))

	tokenSvc.EXPECT().ValidateAccessToken("seller-token").Return(entity.UserPrincipal(uuid.New()), nil).Once()
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/v1/nope", "seller-token"))
}

func TestRouter_Health(t *testing.T) {
	e, _ := newRoutedEcho(t)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", ""))
}
