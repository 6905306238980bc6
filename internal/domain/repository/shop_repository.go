package repository

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrShopNotFound is returned when a shop profile is not found.
	ErrShopNotFound = errors.New("shop profile not found")
	// ErrShopSlugTaken is returned when a slug is already used by another shop.
	ErrShopSlugTaken = errors.New("shop slug already taken")
)

// ShopRepository defines the interface for shop profile persistence.
type ShopRepository interface {
	// CreateShop persists a new shop profile.
	CreateShop(ctx context.Context, shop *entity.ShopProfile) error

	// FindShopByID retrieves a shop profile by ID.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.ShopProfile, error)

	// FindShopByUserID retrieves the shop profile owned by a user.
	FindShopByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error)

	// FindShopBySlug retrieves a shop profile by its public slug.
	FindShopBySlug(ctx context.Context, slug string) (*entity.ShopProfile, error)

	// ExistsShopSlug reports whether slug is used by a shop other than excludeID.
	ExistsShopSlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// UpdateShop updates the editable storefront fields.
	UpdateShop(ctx context.Context, shop *entity.ShopProfile) error

	// LockShopByID loads the shop with SELECT ... FOR UPDATE. It must run inside a transaction.
	LockShopByID(ctx context.Context, id uuid.UUID) (*entity.ShopProfile, error)

	// GrantPro sets is_pro and pro_expiry, read from the primary.
	GrantPro(ctx context.Context, id uuid.UUID, expiry time.Time) error
}
