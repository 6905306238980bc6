package handler

import (
	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentMethodHandlerParams holds dependencies for PaymentMethodHandler, injected by Fx.
type PaymentMethodHandlerParams struct {
	fx.In

	PaymentMethodUC usecase.PaymentMethodUsecase
}

// PaymentMethodHandler serves the channels a shop accepts money through.
type PaymentMethodHandler struct {
	paymentMethodUC usecase.PaymentMethodUsecase
}

// NewPaymentMethodHandler is the constructor for PaymentMethodHandler.
func NewPaymentMethodHandler(params PaymentMethodHandlerParams) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentMethodUC: params.PaymentMethodUC}
}

// PaymentMethodRequest creates or replaces a payment method.
type PaymentMethodRequest struct {
	Type          string `json:"type" validate:"required,max=32"`
	AccountName   string `json:"account_name" validate:"max=100"`
	AccountNumber string `json:"account_number" validate:"required,max=64"`
	Instructions  string `json:"instructions" validate:"max=500"`
	IsActive      *bool  `json:"is_active"`
}

func (r *PaymentMethodRequest) toInput() *usecase.PaymentMethodInput {
	return &usecase.PaymentMethodInput{
		Type:          r.Type,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		Instructions:  r.Instructions,
		IsActive:      r.IsActive,
	}
}

// ListPaymentMethods lists the caller's payment methods.
func (h *PaymentMethodHandler) ListPaymentMethods(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	methods, err := h.paymentMethodUC.ListPaymentMethods(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, methods)
}

// CreatePaymentMethod adds a payment method.
func (h *PaymentMethodHandler) CreatePaymentMethod(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PaymentMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	method, err := h.paymentMethodUC.CreatePaymentMethod(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, method)
}

// UpdatePaymentMethod replaces a payment method.
func (h *PaymentMethodHandler) UpdatePaymentMethod(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	methodID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PaymentMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	method, err := h.paymentMethodUC.UpdatePaymentMethod(c.Request().Context(), userID, methodID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, method)
}

// DeletePaymentMethod removes a payment method.
func (h *PaymentMethodHandler) DeletePaymentMethod(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	methodID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.paymentMethodUC.DeletePaymentMethod(c.Request().Context(), userID, methodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Payment method deleted")
}
