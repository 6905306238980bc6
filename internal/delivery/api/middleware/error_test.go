package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashmemo/internal/delivery/api/response"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantError   string
		wantMessage string
	}{
		{
			name:        "quota keeps details",
			err:         errors.WithStack(domainerrors.ErrQuotaExceeded.WithDetails("the Free plan allows 5 categories")),
			wantStatus:  http.StatusForbidden,
			wantCode:    "QUOTA_EXCEEDED",
			wantError:   "QuotaExceeded",
			wantMessage: "the Free plan allows 5 categories",
		},
		{
			name:       "unauthorized hides details",
			err:        domainerrors.ErrUnauthorized.WithDetails("token expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantError:  "Unauthorized",
		},
		{
			name:       "validation",
			err:        domainerrors.NewValidationError("name is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantError:  "name is required",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantError:  "Not Found",
		},
		{
			name:       "body too large",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "FILE_TOO_LARGE",
			wantError:  http.StatusText(http.StatusRequestEntityTooLarge),
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "Internal server error, please try again later",
		},
		{
			name:       "database error is generic",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to create order"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.NotNil(t, body.Meta)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body.Code)
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body.Error)
			}
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, rec.Body.String(), "deadlock")
		})
	}
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
