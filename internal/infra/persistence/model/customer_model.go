package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. (profile_id, mobile) is unique.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customers_profile_mobile"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Mobile    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_customers_profile_mobile"`
	Email     string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:text"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
