package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlanModel mirrors the 'subscription_plans' table. Limits use -1 for unlimited.
type SubscriptionPlanModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Slug              string    `gorm:"type:varchar(100);unique;not null"`
	Description       string    `gorm:"type:text"`
	Price             float64   `gorm:"type:numeric(12,2);not null;default:0"`
	DurationDays      int       `gorm:"not null;default:30"`
	MaxCategories     int       `gorm:"not null"`
	MaxProducts       int       `gorm:"not null"`
	MaxOrdersPerMonth int       `gorm:"not null"`
	CanUploadImages   bool      `gorm:"not null;default:false"`
	IsDefault         bool      `gorm:"not null;default:false;index"`
	IsActive          bool      `gorm:"not null;default:true"`
	SortOrder         int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}

// SubscriptionRequestModel mirrors the 'subscription_requests' table.
type SubscriptionRequestModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID            uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID               uuid.UUID `gorm:"type:uuid;not null"`
	PaymentTransactionID uuid.UUID `gorm:"type:uuid;unique;not null"`
	Status               string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ResolvedAt           *time.Time
	ResolvedBy           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Plan *SubscriptionPlanModel `gorm:"foreignKey:PlanID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionRequestModel) TableName() string {
	return "subscription_requests"
}

// PaymentTransactionModel mirrors the 'payment_transactions' table.
type PaymentTransactionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TransactionID string    `gorm:"type:varchar(100);unique;not null"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID        uuid.UUID `gorm:"type:uuid;not null"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	SenderNumber  string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Note          string    `gorm:"type:text"`
	VerifiedAt    *time.Time
	VerifiedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}
