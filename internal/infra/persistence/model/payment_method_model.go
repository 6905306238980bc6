package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodModel mirrors the 'payment_methods' table.
type PaymentMethodModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(30);not null"`
	AccountName   string    `gorm:"type:varchar(150)"`
	AccountNumber string    `gorm:"type:varchar(50);not null"`
	Instructions  string    `gorm:"type:text"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
