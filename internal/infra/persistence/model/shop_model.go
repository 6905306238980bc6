package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShopProfileModel mirrors the 'shop_profiles' table. UserID references users.id.
type ShopProfileModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID         `gorm:"type:uuid;unique;not null"`
	ShopName    string            `gorm:"type:varchar(150);not null"`
	ShopSlug    string            `gorm:"type:varchar(150);unique;not null"`
	Description string            `gorm:"type:text"`
	LogoURL     string            `gorm:"type:varchar(500)"`
	Phone       string            `gorm:"type:varchar(20)"`
	Address     string            `gorm:"type:text"`
	FacebookURL string            `gorm:"type:varchar(500)"`
	CustomTheme datatypes.JSONMap `gorm:"type:jsonb"`
	IsPro       bool              `gorm:"not null;default:false"`
	ProExpiry   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopProfileModel) TableName() string {
	return "shop_profiles"
}
