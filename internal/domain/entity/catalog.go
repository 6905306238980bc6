package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. ProductCount is maintained by the product
// service inside the same transaction as the product write.
type Category struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Product is a sellable item in a shop's catalogue.
type Product struct {
	ID            uuid.UUID      `json:"id"`
	ProfileID     uuid.UUID      `json:"profile_id"`
	CategoryID    *uuid.UUID     `json:"category_id,omitempty"`
	Name          string         `json:"name"`
	SKU           string         `json:"sku"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	SalePrice     *float64       `json:"sale_price,omitempty"`
	Stock         int            `json:"stock"`
	ImageURL      string         `json:"image_url"`
	ImagePublicID string         `json:"image_public_id"`
	IsActive      bool           `json:"is_active"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}

	return p.Price
}
