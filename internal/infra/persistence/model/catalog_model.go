package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	ProductCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Attributes is a free-form jsonb map.
type ProductModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID        `gorm:"type:uuid;index"`
	Name          string            `gorm:"type:varchar(200);not null"`
	SKU           string            `gorm:"column:sku;type:varchar(100)"`
	Description   string            `gorm:"type:text"`
	Price         float64           `gorm:"type:numeric(12,2);not null"`
	SalePrice     *float64          `gorm:"type:numeric(12,2)"`
	Stock         int               `gorm:"not null;default:0"`
	ImageURL      string            `gorm:"type:varchar(500)"`
	ImagePublicID string            `gorm:"type:varchar(255)"`
	IsActive      bool              `gorm:"not null;default:true"`
	Attributes    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
