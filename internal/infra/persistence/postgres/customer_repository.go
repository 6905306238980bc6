package postgres

import (
	"context"
	"strings"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomerMobile
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(ctx, "id = ? AND profile_id = ?", id, profileID)
}

func (repo *customerRepository) FindCustomerByMobile(ctx context.Context, profileID uuid.UUID, mobile string) (*entity.Customer, error) {
	return repo.findOne(ctx, "profile_id = ? AND mobile = ?", profileID, mobile)
}

func (repo *customerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) ListCustomers(ctx context.Context, profileID uuid.UUID, search string, page entity.Page) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("profile_id = ?", profileID)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR mobile LIKE ?", like, like)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerModels []*model.CustomerModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND profile_id = ?", customer.ID, customer.ProfileID).
		Updates(map[string]any{
			"name":    customer.Name,
			"mobile":  customer.Mobile,
			"email":   customer.Email,
			"address": customer.Address,
			"note":    customer.Note,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCustomerMobile
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) DeleteCustomer(ctx context.Context, profileID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Name:      data.Name,
		Mobile:    data.Mobile,
		Email:     data.Email,
		Address:   data.Address,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Name:      data.Name,
		Mobile:    data.Mobile,
		Email:     data.Email,
		Address:   data.Address,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
