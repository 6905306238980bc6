package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateShopInput carries the editable storefront fields. Nil fields are left unchanged.
type UpdateShopInput struct {
	ShopName    *string
	ShopSlug    *string
	Description *string
	LogoURL     *string
	Phone       *string
	Address     *string
	FacebookURL *string
	CustomTheme map[string]any
}

// PublicShop is the storefront view of a shop.
type PublicShop struct {
	Shop           *entity.ShopProfile     `json:"shop"`
	Categories     []*entity.Category      `json:"categories"`
	Products       []*entity.Product       `json:"products"`
	PaymentMethods []*entity.PaymentMethod `json:"payment_methods"`
}

// StorefrontCustomer identifies the buyer placing a storefront order.
type StorefrontCustomer struct {
	Name    string
	Mobile  string
	Email   string
	Address string
}

// StorefrontOrderItem references a catalogue product only; prices always come from the catalogue.
type StorefrontOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// StorefrontOrderInput is a buyer's order placed on the public storefront.
type StorefrontOrderInput struct {
	Customer StorefrontCustomer
	Items    []StorefrontOrderItem
	Note     string
}

// ShopUsecase defines the seller's shop profile and the public storefront.
type ShopUsecase interface {
	GetMyShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error)
	UpdateMyShop(ctx context.Context, userID uuid.UUID, input *UpdateShopInput) (*entity.ShopProfile, error)

	// GenerateShopQR renders the public storefront URL as a PNG.
	GenerateShopQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	GetPublicShop(ctx context.Context, slug string) (*PublicShop, error)
	GetPublicProduct(ctx context.Context, slug string, productID uuid.UUID) (*entity.Product, error)

	// PlaceStorefrontOrder upserts the buyer by mobile and records the order against the owner's quota.
	PlaceStorefrontOrder(ctx context.Context, slug string, input *StorefrontOrderInput) (*entity.Order, error)
}
