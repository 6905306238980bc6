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
	"gorm.io/gorm/clause"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	var planM model.SubscriptionPlanModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by ID")
	}

	return toPlanDomain(&planM), nil
}

// FindDefaultPlan retrieves the active default plan. When several are flagged the lowest sort order wins.
func (repo *planRepository) FindDefaultPlan(ctx context.Context) (*entity.SubscriptionPlan, error) {
	var planM model.SubscriptionPlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_default = ? AND is_active = ?", true, true).
		Order("sort_order ASC").
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find default plan")
	}

	return toPlanDomain(&planM), nil
}

func (repo *planRepository) ListActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	var planModels []*model.SubscriptionPlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, price ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.SubscriptionPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// UpsertPlan inserts a plan or refreshes the catalogue entry with the same slug.
func (repo *planRepository) UpsertPlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "price", "duration_days",
				"max_categories", "max_products", "max_orders_per_month",
				"can_upload_images", "is_default", "is_active", "sort_order", "updated_at",
			}),
		}).
		Create(planM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert plan")
	}

	plan.ID = planM.ID

	return nil
}

// --- Mapper Functions ---

func toPlanDomain(data *model.SubscriptionPlanModel) *entity.SubscriptionPlan {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionPlan{
		ID:                data.ID,
		Name:              data.Name,
		Slug:              data.Slug,
		Description:       data.Description,
		Price:             data.Price,
		DurationDays:      data.DurationDays,
		MaxCategories:     entity.Limit(data.MaxCategories),
		MaxProducts:       entity.Limit(data.MaxProducts),
		MaxOrdersPerMonth: entity.Limit(data.MaxOrdersPerMonth),
		CanUploadImages:   data.CanUploadImages,
		IsDefault:         data.IsDefault,
		IsActive:          data.IsActive,
		SortOrder:         data.SortOrder,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPlanDomain(data *entity.SubscriptionPlan) *model.SubscriptionPlanModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionPlanModel{
		ID:                data.ID,
		Name:              data.Name,
		Slug:              data.Slug,
		Description:       data.Description,
		Price:             data.Price,
		DurationDays:      data.DurationDays,
		MaxCategories:     int(data.MaxCategories),
		MaxProducts:       int(data.MaxProducts),
		MaxOrdersPerMonth: int(data.MaxOrdersPerMonth),
		CanUploadImages:   data.CanUploadImages,
		IsDefault:         data.IsDefault,
		IsActive:          data.IsActive,
		SortOrder:         data.SortOrder,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
