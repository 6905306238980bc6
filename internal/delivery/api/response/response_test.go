package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cashmemo/internal/delivery/context"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestCreated(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Created(c, map[string]string{"id": "abc"}))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-42"}, body["meta"])
	assert.NotContains(t, body, "code")
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, "Device deactivated"))

	body := decode(t, rec)
	assert.Equal(t, "Device deactivated", body["message"])
	assert.NotContains(t, body, "data")
}

func TestAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrQuotaExceeded.WithDetails("the Free plan allows 20 products")))

	body := decode(t, rec)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "QUOTA_EXCEEDED", body["code"])
	assert.Equal(t, "QuotaExceeded", body["error"])
	assert.Equal(t, "the Free plan allows 20 products", body["message"])
}

func TestInternalServerError_HidesDetails(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom", "stack trace here"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, body, "message")
}

func TestPNG(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, PNG(c, []byte{0x89, 'P', 'N', 'G'}))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}
