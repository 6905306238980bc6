package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	quota     usecase.QuotaEngine
	logger    *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Quota     usecase.QuotaEngine
	Logger    *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager: params.TxManager,
		repos:     params.Repos,
		quota:     params.Quota,
		logger:    params.Logger,
	}
}

func (srv *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	categories, err := srv.repos.CategoryRepo().ListCategories(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return nonNil(categories), nil
}

func (srv *categoryService) GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	category, err := srv.repos.CategoryRepo().FindCategoryByID(ctx, shop.ID, categoryID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError("name is required")
	}

	var category *entity.Category
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		if err := srv.quota.Enforce(ctx, repos, shop.ID, entity.QuotaCategory); err != nil {
			return err
		}

		category = &entity.Category{
			ProfileID:   shop.ID,
			Name:        name,
			Description: strings.TrimSpace(input.Description),
		}

		return errors.Wrap(repos.CategoryRepo().CreateCategory(ctx, category), "failed to create category")
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Category created",
		slog.String("categoryID", category.ID.String()),
		slog.String("profileID", category.ProfileID.String()),
	)

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError("name is required")
	}
	category.Name = name
	category.Description = strings.TrimSpace(input.Description)

	if err := srv.repos.CategoryRepo().UpdateCategory(ctx, category); err != nil {
		return nil, mapRepoErr(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to update category")
	}

	return category, nil
}

// DeleteCategory fails with a conflict while products still reference the category.
func (srv *categoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.repos.CategoryRepo().DeleteCategory(ctx, shop.ID, categoryID); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return mapRepoErr(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to delete category")
	}

	return nil
}

type productService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	quota     usecase.QuotaEngine
	media     service.MediaStore
	logger    *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Quota     usecase.QuotaEngine
	Media     service.MediaStore
	Logger    *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager: params.TxManager,
		repos:     params.Repos,
		quota:     params.Quota,
		media:     params.Media,
		logger:    params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, userID uuid.UUID, input *usecase.ListProductsInput) (*entity.PagedResult[*entity.Product], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	page := normalizePage(input.Page)
	products, total, err := srv.repos.ProductRepo().ListProducts(ctx, repository.ProductFilter{
		ProfileID:  shop.ID,
		CategoryID: input.CategoryID,
		Search:     strings.TrimSpace(input.Search),
		Page:       page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return newPagedResult(products, total, page), nil
}

func (srv *productService) GetProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	product, err := srv.repos.ProductRepo().FindProductByID(ctx, shop.ID, productID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}

	return product, nil
}

// CreateProduct enforces the product quota and bumps the category counter in one transaction.
func (srv *productService) CreateProduct(ctx context.Context, userID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.NewValidationError("name is required")
	}
	if input.Price == nil {
		return nil, domainerrors.NewValidationError("price is required")
	}

	product := &entity.Product{IsActive: true}
	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		if err := srv.quota.Enforce(ctx, repos, shop.ID, entity.QuotaProduct); err != nil {
			return err
		}

		product.ProfileID = shop.ID
		if err := ensureCategory(ctx, repos, shop.ID, product.CategoryID); err != nil {
			return err
		}

		if err := repos.ProductRepo().CreateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return adjustCategoryCount(ctx, repos, product.CategoryID, 1)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("profileID", product.ProfileID.String()),
	)

	return product, nil
}

// UpdateProduct moves the category counter when the product changes category.
func (srv *productService) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	var (
		product       *entity.Product
		replacedImage string
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		product, err = repos.ProductRepo().FindProductByID(ctx, shop.ID, productID)
		if err != nil {
			return mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
		}

		previousCategory := product.CategoryID
		previousImage := product.ImagePublicID
		if err := applyProductInput(product, input); err != nil {
			return err
		}

		if err := ensureCategory(ctx, repos, shop.ID, product.CategoryID); err != nil {
			return err
		}

		if err := repos.ProductRepo().UpdateProduct(ctx, product); err != nil {
			return mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to update product")
		}

		if !sameCategory(previousCategory, product.CategoryID) {
			if err := adjustCategoryCount(ctx, repos, previousCategory, -1); err != nil {
				return err
			}
			if err := adjustCategoryCount(ctx, repos, product.CategoryID, 1); err != nil {
				return err
			}
		}

		if previousImage != "" && previousImage != product.ImagePublicID {
			replacedImage = previousImage
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.removeImage(ctx, product.ProfileID, replacedImage)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	var (
		profileID     uuid.UUID
		imagePublicID string
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}
		profileID = shop.ID

		product, err := repos.ProductRepo().FindProductByID(ctx, shop.ID, productID)
		if err != nil {
			return mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
		}

		if err := repos.ProductRepo().DeleteProduct(ctx, shop.ID, productID); err != nil {
			return mapRepoErr(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to delete product")
		}
		imagePublicID = product.ImagePublicID

		return adjustCategoryCount(ctx, repos, product.CategoryID, -1)
	})
	if err != nil {
		return err
	}

	srv.removeImage(ctx, profileID, imagePublicID)

	return nil
}

// removeImage is best effort; an orphaned image never fails the product write.
// Only images in the shop's own media folder are removed.
func (srv *productService) removeImage(ctx context.Context, profileID uuid.UUID, publicID string) {
	if publicID == "" {
		return
	}

	if err := srv.media.Delete(ctx, profileID.String(), publicID); err != nil {
		srv.log(ctx).Warn("Failed to delete product image",
			slog.String("publicID", publicID),
			slog.Any("error", err),
		)
	}
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domainerrors.NewValidationError("name cannot be empty")
		}
		product.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return domainerrors.NewValidationError("price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.SalePrice != nil {
		if *input.SalePrice < 0 {
			return domainerrors.NewValidationError("sale_price cannot be negative")
		}
		salePrice := *input.SalePrice
		product.SalePrice = &salePrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return domainerrors.NewValidationError("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}

	switch {
	case input.ClearCategory:
		product.CategoryID = nil
	case input.CategoryID != nil:
		categoryID := *input.CategoryID
		product.CategoryID = &categoryID
	}

	assignString(&product.SKU, input.SKU)
	assignString(&product.Description, input.Description)
	assignString(&product.ImageURL, input.ImageURL)
	assignString(&product.ImagePublicID, input.ImagePublicID)
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Attributes != nil {
		product.Attributes = input.Attributes
	}

	return nil
}

func ensureCategory(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	if _, err := repos.CategoryRepo().FindCategoryByID(ctx, profileID, *categoryID); err != nil {
		return mapRepoErr(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	return nil
}

func adjustCategoryCount(ctx context.Context, repos repository.RepositoryFactory, categoryID *uuid.UUID, delta int) error {
	if categoryID == nil {
		return nil
	}

	return errors.Wrap(repos.CategoryRepo().AdjustProductCount(ctx, *categoryID, delta), "failed to adjust category product count")
}

func sameCategory(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
