package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cashmemo/internal/delivery/api/validator"
	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context with the API validator and an optional principal.
func newTestContext(method, target, body string, principal entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !principal.IsZero() {
		deliverycontext.SetPrincipal(c, principal)
	}

	return c, rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("from", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("from", "2024-03-01T10:00:00+06:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC), got.UTC())

	_, err = parseDate("from", "01/03/2024")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStatusQuery(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?status=PAID", "", entity.Principal{})
	status, err := statusQuery(c, "pending", "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", status)

	c, _ = newTestContext(http.MethodGet, "/?status=lost", "", entity.Principal{})
	_, err = statusQuery(c, "pending", "paid")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	c, _ = newTestContext(http.MethodGet, "/", "", entity.Principal{})
	status, err = statusQuery(c, "pending")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestPageQuery(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?limit=25&offset=50", "", entity.Principal{})
	assert.Equal(t, entity.Page{Limit: 25, Offset: 50}, pageQuery(c))

	c, _ = newTestContext(http.MethodGet, "/?limit=abc", "", entity.Principal{})
	assert.Equal(t, entity.Page{}, pageQuery(c))
}

func TestCurrentUser_RequiresPrincipal(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/", "", entity.Principal{})

	_, err := currentUser(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
