package response

import (
	"net/http"

	deliverycontext "cashmemo/internal/delivery/context"
	domainerrors "cashmemo/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response
type Envelope struct {
	Success bool      `json:"success"`
	Code    string    `json:"code,omitempty"`    // Machine-readable error code, e.g. "QUOTA_EXCEEDED"
	Error   string    `json:"error,omitempty"`   // Error summary, e.g. "QuotaExceeded"
	Message string    `json:"message,omitempty"` // Human readable detail
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// SuccessWithMessage returns a successful response carrying a message
func SuccessWithMessage(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Created returns a 201 response
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Message returns a 200 response without data
func Message(c echo.Context, message string) error {
	return SuccessWithMessage(c, http.StatusOK, nil, message)
}

// PNG writes an image body
func PNG(c echo.Context, png []byte) error {
	return c.Blob(http.StatusOK, "image/png", png)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, errorSummary, message string) error {
	// Server faults and authentication failures never carry details.
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		message = ""
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Code:    errorCode,
		Error:   errorSummary,
		Message: message,
		Meta:    meta(c),
	})
}

// AppError renders a domain error
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), err.Details())
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInternalError)
}
