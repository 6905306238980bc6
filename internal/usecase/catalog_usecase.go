package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries category fields for create and update.
type CategoryInput struct {
	Name        string
	Description string
}

// ProductInput carries product fields. On update, nil pointers are left unchanged.
type ProductInput struct {
	CategoryID    *uuid.UUID
	ClearCategory bool
	Name          *string
	SKU           *string
	Description   *string
	Price         *float64
	SalePrice     *float64
	Stock         *int
	ImageURL      *string
	ImagePublicID *string
	IsActive      *bool
	Attributes    map[string]any
}

// ListProductsInput narrows product listings.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Search     string
	Page       entity.Page
}

// CategoryUsecase defines category management for a seller.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

// ProductUsecase defines catalogue management for a seller.
type ProductUsecase interface {
	ListProducts(ctx context.Context, userID uuid.UUID, input *ListProductsInput) (*entity.PagedResult[*entity.Product], error)
	GetProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, userID uuid.UUID, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error
}
