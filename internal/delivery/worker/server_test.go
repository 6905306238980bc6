package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(push echo.HandlerFunc) *echo.Echo {
	return newWorkerEcho(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), push)
}

func TestWorkerServer_Health(t *testing.T) {
	e := newTestWorker(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","role":"worker"}`, rec.Body.String())
}

func TestWorkerServer_PushCarriesRequestID(t *testing.T) {
	var seen string
	e := newTestWorker(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":{"data":""}}`))
	req.Header.Set(deliverycontext.HeaderXRequestID, "evt-req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "evt-req-1", seen)
}

func TestWorkerServer_OversizedPushIsRejected(t *testing.T) {
	called := false
	e := newTestWorker(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	body := strings.Repeat("x", 300<<10)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
}

func TestWorkerServer_UnknownRoute(t *testing.T) {
	e := newTestWorker(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/plans", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
