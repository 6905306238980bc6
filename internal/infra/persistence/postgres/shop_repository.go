package postgres

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// CreateShop persists a new shop profile.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.ShopProfile) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop profile")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.ShopProfile, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *shopRepository) FindShopByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	return repo.findOne(repo.db.WithContext(ctx), "user_id = ?", userID)
}

func (repo *shopRepository) FindShopBySlug(ctx context.Context, slug string) (*entity.ShopProfile, error) {
	return repo.findOne(repo.db.WithContext(ctx), "shop_slug = ?", slug)
}

// LockShopByID reads the row from the primary and holds a row lock until the transaction ends.
func (repo *shopRepository) LockShopByID(ctx context.Context, id uuid.UUID) (*entity.ShopProfile, error) {
	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findOne(db, "id = ?", id)
}

func (repo *shopRepository) findOne(db *gorm.DB, query string, args ...any) (*entity.ShopProfile, error) {
	var shopM model.ShopProfileModel

	if err := db.Where(query, args...).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop profile")
	}

	return toShopDomain(&shopM), nil
}

// ExistsShopSlug reports whether another shop already uses slug.
func (repo *shopRepository) ExistsShopSlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Where("shop_slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop slug")
	}

	return count > 0, nil
}

// UpdateShop updates the editable storefront fields. Pro status is never touched here.
func (repo *shopRepository) UpdateShop(ctx context.Context, shop *entity.ShopProfile) error {
	shopM := fromShopDomain(shop)

	result := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"shop_name":    shopM.ShopName,
			"shop_slug":    shopM.ShopSlug,
			"description":  shopM.Description,
			"logo_url":     shopM.LogoURL,
			"phone":        shopM.Phone,
			"address":      shopM.Address,
			"facebook_url": shopM.FacebookURL,
			"custom_theme": shopM.CustomTheme,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrShopSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// GrantPro sets the Pro flag and its expiry.
func (repo *shopRepository) GrantPro(ctx context.Context, id uuid.UUID, expiry time.Time) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ShopProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_pro":     true,
			"pro_expiry": expiry,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to grant pro")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopProfileModel) *entity.ShopProfile {
	if data == nil {
		return nil
	}

	return &entity.ShopProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		ShopName:    data.ShopName,
		ShopSlug:    data.ShopSlug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Phone:       data.Phone,
		Address:     data.Address,
		FacebookURL: data.FacebookURL,
		CustomTheme: map[string]any(data.CustomTheme),
		IsPro:       data.IsPro,
		ProExpiry:   data.ProExpiry,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.ShopProfile) *model.ShopProfileModel {
	if data == nil {
		return nil
	}

	return &model.ShopProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ShopName:    data.ShopName,
		ShopSlug:    data.ShopSlug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Phone:       data.Phone,
		Address:     data.Address,
		FacebookURL: data.FacebookURL,
		CustomTheme: data.CustomTheme,
		IsPro:       data.IsPro,
		ProExpiry:   data.ProExpiry,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
