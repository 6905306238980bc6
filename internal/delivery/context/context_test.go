package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), httptest.NewRecorder())
}

func TestSetRequestID_VisibleToHandlersAndServices(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-7")

	assert.Equal(t, "req-7", GetRequestID(c))
	assert.Equal(t, "req-7", GetRequestIDFromContext(c.Request().Context()))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "push-1")))

	assert.Equal(t, "push-1", GetRequestID(c))
}

func TestSetPrincipal_TagsRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, nil))

	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base.With(slog.String("request_id", "req-9")))))

	seller := uuid.New()
	SetPrincipal(c, entity.UserPrincipal(seller))

	got, ok := PrincipalFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, seller, got.ID)

	GetLoggerOrDefault(c.Request().Context(), nil).Info("order created")

	line := buf.String()
	assert.Contains(t, line, `"request_id":"req-9"`)
	assert.Contains(t, line, `"principal_kind":"user"`)
	assert.Contains(t, line, `"principal_id":"`+seller.String()+`"`)
}

func TestWithLogAttrs_WithoutLogger(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, WithLogAttrs(ctx, slog.String("k", "v")))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
