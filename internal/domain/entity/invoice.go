package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is derived from the paid amount.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

// Invoice is a cash memo issued to a customer.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	ProfileID     uuid.UUID     `json:"profile_id"`
	OrderID       *uuid.UUID    `json:"order_id,omitempty"`
	CustomerID    *uuid.UUID    `json:"customer_id,omitempty"`
	InvoiceNumber string        `json:"invoice_number"`
	PublicToken   string        `json:"public_token"` // Unguessable token for the public invoice link.
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Items         []InvoiceLine `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaidAmount    float64       `json:"paid_amount"`
	Status        InvoiceStatus `json:"status"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Note          string        `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InvoiceLine is a single row on a cash memo.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Balance is the amount still owed.
func (i *Invoice) Balance() float64 {
	return i.Total - i.PaidAmount
}

// RecomputeTotals derives line totals, subtotal and total from the lines.
func (i *Invoice) RecomputeTotals() {
	var subtotal float64
	for idx := range i.Items {
		i.Items[idx].LineTotal = i.Items[idx].UnitPrice * float64(i.Items[idx].Quantity)
		subtotal += i.Items[idx].LineTotal
	}

	i.Subtotal = subtotal
	i.Total = subtotal - i.Discount
	if i.Total < 0 {
		i.Total = 0
	}
}

// RecomputeStatus derives the status from PaidAmount.
func (i *Invoice) RecomputeStatus() {
	switch {
	case i.PaidAmount <= 0:
		i.Status = InvoiceUnpaid
	case i.PaidAmount < i.Total:
		i.Status = InvoicePartial
	default:
		i.Status = InvoicePaid
	}
}

// Payment is money received against an invoice.
type Payment struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}
