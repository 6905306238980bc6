package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category is not found in the profile.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found in the profile.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository defines the interface for category persistence. Every
// lookup is scoped to a profile.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, profileID uuid.UUID) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, profileID, id uuid.UUID) error

	// CountCategories counts all categories of a profile.
	CountCategories(ctx context.Context, profileID uuid.UUID) (int64, error)

	// AdjustProductCount adds delta to the denormalised product_count, never below zero.
	AdjustProductCount(ctx context.Context, id uuid.UUID, delta int) error
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	ProfileID  uuid.UUID
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
	Page       entity.Page
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Product, error)
	FindProductsByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, profileID, id uuid.UUID) error

	// CountProducts counts all products of a profile.
	CountProducts(ctx context.Context, profileID uuid.UUID) (int64, error)
}
