package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAdInput defines a new ad placement.
type CreateAdInput struct {
	Slot      string
	Title     string
	ImageURL  string
	LinkURL   string
	IsActive  bool
	SortOrder int
}

// AdUsecase serves ad placements from the reference cache.
type AdUsecase interface {
	// ListActive reads a slot cache-first and falls back to the database.
	ListActive(ctx context.Context, slot string) ([]*entity.AdPlacement, error)
	ListAll(ctx context.Context) ([]*entity.AdPlacement, error)
	CreateAd(ctx context.Context, input *CreateAdInput) (*entity.AdPlacement, error)
	DeleteAd(ctx context.Context, adID uuid.UUID) error
}
