package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrPaymentNotFound is returned when a payment is not found on the invoice.
	ErrPaymentNotFound = errors.New("payment not found")
)

// InvoiceRepository defines the interface for cash memo persistence.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error
	FindInvoiceByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error)

	// FindInvoiceByToken retrieves an invoice by its public token, regardless of profile.
	FindInvoiceByToken(ctx context.Context, token string) (*entity.Invoice, error)

	ListInvoices(ctx context.Context, profileID uuid.UUID, status entity.InvoiceStatus, page entity.Page) ([]*entity.Invoice, int64, error)

	// UpdateInvoice updates due date and note.
	UpdateInvoice(ctx context.Context, invoice *entity.Invoice) error

	DeleteInvoice(ctx context.Context, profileID, id uuid.UUID) error

	// LockInvoiceByID loads the invoice with SELECT ... FOR UPDATE. It must run inside a transaction.
	LockInvoiceByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error)

	// UpdatePaidAmount stores the recomputed paid amount and status.
	UpdatePaidAmount(ctx context.Context, id uuid.UUID, paidAmount float64, status entity.InvoiceStatus) error
}

// PaymentRepository defines the interface for invoice payment persistence.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	FindPaymentByID(ctx context.Context, invoiceID, id uuid.UUID) (*entity.Payment, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.Payment, error)
	DeletePayment(ctx context.Context, invoiceID, id uuid.UUID) error
}
