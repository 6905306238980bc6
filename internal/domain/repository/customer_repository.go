package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found in the profile.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomerMobile is returned when the mobile is already used in the profile.
	ErrDuplicateCustomerMobile = errors.New("customer mobile already exists")
)

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
	FindCustomerByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Customer, error)
	FindCustomerByMobile(ctx context.Context, profileID uuid.UUID, mobile string) (*entity.Customer, error)
	ListCustomers(ctx context.Context, profileID uuid.UUID, search string, page entity.Page) ([]*entity.Customer, int64, error)
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
	DeleteCustomer(ctx context.Context, profileID, id uuid.UUID) error
}
