package handler

import (
	"time"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/domain/entity"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var invoiceStatuses = []string{
	string(entity.InvoiceUnpaid),
	string(entity.InvoicePartial),
	string(entity.InvoicePaid),
}

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
}

// InvoiceHandler serves cash memos, their payments and the public invoice view.
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
}

// NewInvoiceHandler is the constructor for InvoiceHandler.
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: params.InvoiceUC}
}

// InvoiceLineRequest is an ad-hoc cash memo line.
type InvoiceLineRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// CreateInvoiceRequest builds a cash memo from an order or from ad-hoc lines.
type CreateInvoiceRequest struct {
	OrderID       *string              `json:"order_id" validate:"omitempty,uuid"`
	CustomerID    *string              `json:"customer_id" validate:"omitempty,uuid"`
	CustomerName  string               `json:"customer_name" validate:"max=100"`
	CustomerPhone string               `json:"customer_phone" validate:"max=20"`
	Items         []InvoiceLineRequest `json:"items" validate:"max=100,dive"`
	Discount      float64              `json:"discount" validate:"gte=0"`
	DueDate       string               `json:"due_date"`
	Note          string               `json:"note" validate:"max=500"`
}

// UpdateInvoiceRequest edits the due date or note.
type UpdateInvoiceRequest struct {
	DueDate *string `json:"due_date"`
	Note    *string `json:"note" validate:"omitempty,max=500"`
}

// CreatePaymentRequest records money received against an invoice.
type CreatePaymentRequest struct {
	Amount    float64 `json:"amount" validate:"gt=0"`
	Method    string  `json:"method" validate:"required,max=32"`
	Reference string  `json:"reference" validate:"max=100"`
	PaidAt    string  `json:"paid_at"`
}

func optionalDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ListInvoices lists cash memos, optionally filtered by payment status.
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := statusQuery(c, invoiceStatuses...)
	if err != nil {
		return err
	}

	result, err := h.invoiceUC.ListInvoices(c.Request().Context(), userID, &usecase.ListInvoicesInput{
		Status: entity.InvoiceStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// GetInvoice returns one cash memo.
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.invoiceUC.GetInvoice(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, invoice)
}

// CreateInvoice issues a cash memo.
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateInvoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dueDate, err := optionalDate("due_date", req.DueDate)
	if err != nil {
		return err
	}

	input := &usecase.CreateInvoiceInput{
		OrderID:       parseOptionalID(req.OrderID),
		CustomerID:    parseOptionalID(req.CustomerID),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         make([]usecase.InvoiceLineInput, 0, len(req.Items)),
		Discount:      req.Discount,
		DueDate:       dueDate,
		Note:          req.Note,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.InvoiceLineInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	invoice, err := h.invoiceUC.CreateInvoice(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, invoice)
}

// UpdateInvoice edits the due date or note of a cash memo.
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateInvoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateInvoiceInput{Note: req.Note}
	if req.DueDate != nil {
		if input.DueDate, err = optionalDate("due_date", *req.DueDate); err != nil {
			return err
		}
	}

	invoice, err := h.invoiceUC.UpdateInvoice(c.Request().Context(), userID, invoiceID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, invoice)
}

// DeleteInvoice removes a cash memo and its payments.
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.invoiceUC.DeleteInvoice(c.Request().Context(), userID, invoiceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Invoice deleted")
}

// GetPublicInvoice resolves a public invoice link.
func (h *InvoiceHandler) GetPublicInvoice(c echo.Context) error {
	invoice, err := h.invoiceUC.GetPublicInvoice(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, invoice)
}

// GenerateInvoiceQR returns the public invoice URL as a PNG.
func (h *InvoiceHandler) GenerateInvoiceQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.invoiceUC.GenerateInvoiceQR(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// ListPayments lists the payments recorded against an invoice.
func (h *InvoiceHandler) ListPayments(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payments, err := h.invoiceUC.ListPayments(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, payments)
}

// CreatePayment records a payment that must not exceed the balance.
func (h *InvoiceHandler) CreatePayment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	paidAt, err := optionalDate("paid_at", req.PaidAt)
	if err != nil {
		return err
	}

	payment, err := h.invoiceUC.CreatePayment(c.Request().Context(), userID, invoiceID, &usecase.CreatePaymentInput{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    paidAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, payment)
}

// DeletePayment removes a payment and restores the invoice balance.
func (h *InvoiceHandler) DeletePayment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	if err := h.invoiceUC.DeletePayment(c.Request().Context(), userID, invoiceID, paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Payment deleted")
}
