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

// paymentMethodRepository implements the repository.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (repo *paymentMethodRepository) CreatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) error {
	methodM := fromPaymentMethodDomain(method)

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment method")
	}

	method.ID = methodM.ID
	method.CreatedAt = methodM.CreatedAt
	method.UpdatedAt = methodM.UpdatedAt

	return nil
}

func (repo *paymentMethodRepository) FindPaymentMethodByID(ctx context.Context, profileID, id uuid.UUID) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&methodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment method")
	}

	return toPaymentMethodDomain(&methodM), nil
}

func (repo *paymentMethodRepository) ListPaymentMethods(ctx context.Context, profileID uuid.UUID, activeOnly bool) ([]*entity.PaymentMethod, error) {
	query := repo.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var methodModels []*model.PaymentMethodModel
	if err := query.Order("created_at ASC").Find(&methodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	methods := make([]*entity.PaymentMethod, 0, len(methodModels))
	for _, methodM := range methodModels {
		methods = append(methods, toPaymentMethodDomain(methodM))
	}

	return methods, nil
}

func (repo *paymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("id = ? AND profile_id = ?", method.ID, method.ProfileID).
		Updates(map[string]any{
			"type":           method.Type,
			"account_name":   method.AccountName,
			"account_number": method.AccountNumber,
			"instructions":   method.Instructions,
			"is_active":      method.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment method")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

func (repo *paymentMethodRepository) DeletePaymentMethod(ctx context.Context, profileID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&model.PaymentMethodModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment method")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentMethodDomain(data *model.PaymentMethodModel) *entity.PaymentMethod {
	if data == nil {
		return nil
	}

	return &entity.PaymentMethod{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Type:          data.Type,
		AccountName:   data.AccountName,
		AccountNumber: data.AccountNumber,
		Instructions:  data.Instructions,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPaymentMethodDomain(data *entity.PaymentMethod) *model.PaymentMethodModel {
	if data == nil {
		return nil
	}

	return &model.PaymentMethodModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Type:          data.Type,
		AccountName:   data.AccountName,
		AccountNumber: data.AccountNumber,
		Instructions:  data.Instructions,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
