package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "reuses client id", header: "client-req-1", wantSame: true},
		{name: "generates when missing"},
		{name: "replaces oversized id", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seenCtxID string
			var sawLogger bool
			next := func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				sawLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			}

			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			require.NoError(t, mw.Process(next)(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenCtxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.True(t, sawLogger)

			if tt.wantSame {
				assert.Equal(t, tt.header, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func newLoggerUnderTest(debug bool, skip ...string) (*LoggerMiddleware, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg, skip...), buf
}

func serve(t *testing.T, mw *LoggerMiddleware, path string, handler echo.HandlerFunc) error {
	t.Helper()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())

	return mw.Handle(handler)(c)
}

func TestLoggerMiddleware_LogsFailuresWithStatusFromError(t *testing.T) {
	mw, buf := newLoggerUnderTest(false)

	err := serve(t, mw, "/api/v1/categories", func(echo.Context) error {
		return domainerrors.ErrQuotaExceeded
	})

	require.ErrorIs(t, err, domainerrors.ErrQuotaExceeded)
	assert.Contains(t, buf.String(), `"status":403`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	quiet, quietBuf := newLoggerUnderTest(false)
	require.NoError(t, serve(t, quiet, "/api/v1/me", ok))
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newLoggerUnderTest(true)
	require.NoError(t, serve(t, verbose, "/api/v1/me", ok))
	assert.Contains(t, verboseBuf.String(), `"status":200`)
}

func TestLoggerMiddleware_SkipPaths(t *testing.T) {
	mw, buf := newLoggerUnderTest(true, "/health")

	require.NoError(t, serve(t, mw, "/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) }))
	assert.Empty(t, buf.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(echo.ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, statusOf(domainerrors.ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, statusOf(io.EOF))
}
