package postgres

import (
	"context"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adRepository implements the repository.AdRepository interface.
type adRepository struct {
	db *gorm.DB
}

// NewAdRepository is the constructor for adRepository.
func NewAdRepository(db *gorm.DB) repository.AdRepository {
	return &adRepository{db: db}
}

func (repo *adRepository) CreateAd(ctx context.Context, ad *entity.AdPlacement) error {
	adM := &model.AdPlacementModel{
		ID:        ad.ID,
		Slot:      ad.Slot,
		Title:     ad.Title,
		ImageURL:  ad.ImageURL,
		LinkURL:   ad.LinkURL,
		IsActive:  ad.IsActive,
		SortOrder: ad.SortOrder,
	}

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad placement")
	}

	ad.ID = adM.ID
	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

func (repo *adRepository) FindAdByID(ctx context.Context, id uuid.UUID) (*entity.AdPlacement, error) {
	var adM model.AdPlacementModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdNotFound
		}

		return nil, errors.Wrap(err, "failed to find ad placement")
	}

	return toAdDomain(&adM), nil
}

func (repo *adRepository) ListActiveAds(ctx context.Context, slot string) ([]*entity.AdPlacement, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if slot != "" {
		query = query.Where("slot = ?", slot)
	}

	return repo.find(query)
}

func (repo *adRepository) ListAds(ctx context.Context) ([]*entity.AdPlacement, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *adRepository) find(query *gorm.DB) ([]*entity.AdPlacement, error) {
	var adModels []*model.AdPlacementModel

	if err := query.Order("sort_order ASC, created_at DESC").Find(&adModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ad placements")
	}

	ads := make([]*entity.AdPlacement, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdDomain(adM))
	}

	return ads, nil
}

func (repo *adRepository) DeleteAd(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdPlacementModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ad placement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

func toAdDomain(data *model.AdPlacementModel) *entity.AdPlacement {
	return &entity.AdPlacement{
		ID:        data.ID,
		Slot:      data.Slot,
		Title:     data.Title,
		ImageURL:  data.ImageURL,
		LinkURL:   data.LinkURL,
		IsActive:  data.IsActive,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
