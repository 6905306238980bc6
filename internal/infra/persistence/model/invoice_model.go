package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceLine is the jsonb shape of a cash memo row.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// InvoiceModel mirrors the 'invoices' table. Line items live in a jsonb column.
type InvoiceModel struct {
	ID            uuid.UUID                        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID     uuid.UUID                        `gorm:"type:uuid;not null;index"`
	OrderID       *uuid.UUID                       `gorm:"type:uuid"`
	CustomerID    *uuid.UUID                       `gorm:"type:uuid"`
	InvoiceNumber string                           `gorm:"type:varchar(40);unique;not null"`
	PublicToken   string                           `gorm:"type:varchar(64);unique;not null"`
	CustomerName  string                           `gorm:"type:varchar(150)"`
	CustomerPhone string                           `gorm:"type:varchar(20)"`
	Items         datatypes.JSONSlice[InvoiceLine] `gorm:"type:jsonb;not null"`
	Subtotal      float64                          `gorm:"type:numeric(12,2);not null"`
	Discount      float64                          `gorm:"type:numeric(12,2);not null;default:0"`
	Total         float64                          `gorm:"type:numeric(12,2);not null"`
	PaidAmount    float64                          `gorm:"type:numeric(12,2);not null;default:0"`
	Status        string                           `gorm:"type:varchar(20);not null;default:'unpaid'"`
	DueDate       *time.Time
	Note          string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Method    string    `gorm:"type:varchar(50)"`
	Reference string    `gorm:"type:varchar(100)"`
	PaidAt    time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
