package usecase

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// InvoiceLineInput is an ad-hoc cash memo line.
type InvoiceLineInput struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// CreateInvoiceInput builds a cash memo either from an order or from ad-hoc lines.
type CreateInvoiceInput struct {
	OrderID       *uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone string
	Items         []InvoiceLineInput
	Discount      float64
	DueDate       *time.Time
	Note          string
}

// UpdateInvoiceInput carries the editable cash memo fields.
type UpdateInvoiceInput struct {
	DueDate *time.Time
	Note    *string
}

// ListInvoicesInput narrows invoice listings.
type ListInvoicesInput struct {
	Status entity.InvoiceStatus
	Page   entity.Page
}

// CreatePaymentInput records money received against an invoice.
type CreatePaymentInput struct {
	Amount    float64
	Method    string
	Reference string
	PaidAt    *time.Time
}

// PublicInvoice is the customer-facing view of a cash memo.
type PublicInvoice struct {
	Invoice        *entity.Invoice         `json:"invoice"`
	Shop           *entity.ShopProfile     `json:"shop"`
	PaymentMethods []*entity.PaymentMethod `json:"payment_methods"`
}

// InvoiceUsecase defines cash memos and the payments recorded against them.
type InvoiceUsecase interface {
	ListInvoices(ctx context.Context, userID uuid.UUID, input *ListInvoicesInput) (*entity.PagedResult[*entity.Invoice], error)
	GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error)
	CreateInvoice(ctx context.Context, userID uuid.UUID, input *CreateInvoiceInput) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error

	// GetPublicInvoice resolves the unguessable token of a public invoice link.
	GetPublicInvoice(ctx context.Context, token string) (*PublicInvoice, error)
	// GenerateInvoiceQR renders the public invoice URL as a PNG.
	GenerateInvoiceQR(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, error)

	ListPayments(ctx context.Context, userID, invoiceID uuid.UUID) ([]*entity.Payment, error)
	// CreatePayment and DeletePayment keep the invoice's paid amount and status in step.
	CreatePayment(ctx context.Context, userID, invoiceID uuid.UUID, input *CreatePaymentInput) (*entity.Payment, error)
	DeletePayment(ctx context.Context, userID, invoiceID, paymentID uuid.UUID) error
}
