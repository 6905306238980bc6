// Package handler contains the HTTP handlers of the seller API, the storefront and the admin console.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"cashmemo/internal/delivery/api/middleware"
	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name + " must be a valid id")
	}

	return id, nil
}

// currentUser returns the seller set by UserGuard.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// currentAdmin returns the administrator set by AdminGuard.
func currentAdmin(c echo.Context) (uuid.UUID, error) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return adminID, nil
}

// pageQuery reads limit and offset. Services clamp the values.
func pageQuery(c echo.Context) entity.Page {
	var page entity.Page
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		page.Offset = offset
	}

	return page
}

// optionalUUIDQuery parses an optional uuid query parameter.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(name + " must be a valid id")
	}

	return &id, nil
}

// statusQuery reads an optional status filter and rejects values outside allowed.
func statusQuery(c echo.Context, allowed ...string) (string, error) {
	raw := strings.TrimSpace(c.QueryParam("status"))
	if raw == "" {
		return "", nil
	}

	for _, status := range allowed {
		if strings.EqualFold(raw, status) {
			return status, nil
		}
	}

	return "", domainerrors.NewValidationError("status must be one of: " + strings.Join(allowed, " "))
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func parseDate(field, raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	return time.Time{}, domainerrors.NewValidationError(field + " must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
