package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// ErrAdNotFound is returned when an ad placement is not found.
var ErrAdNotFound = errors.New("ad placement not found")

// AdRepository defines the interface for ad placement persistence.
type AdRepository interface {
	CreateAd(ctx context.Context, ad *entity.AdPlacement) error
	FindAdByID(ctx context.Context, id uuid.UUID) (*entity.AdPlacement, error)

	// ListActiveAds returns active ads of a slot ordered by sort_order. An empty slot matches all.
	ListActiveAds(ctx context.Context, slot string) ([]*entity.AdPlacement, error)

	// ListAds returns every ad for the admin console.
	ListAds(ctx context.Context) ([]*entity.AdPlacement, error)

	DeleteAd(ctx context.Context, id uuid.UUID) error
}
