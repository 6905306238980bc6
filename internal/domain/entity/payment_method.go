package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a channel a shop accepts money through, shown on invoices
// and the storefront.
type PaymentMethod struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	Type          string    `json:"type"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	Instructions  string    `json:"instructions,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
