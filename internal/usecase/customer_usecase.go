package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerInput carries customer fields for create and update.
type CustomerInput struct {
	Name    string
	Mobile  string
	Email   string
	Address string
	Note    string
}

// ListCustomersInput narrows customer listings.
type ListCustomersInput struct {
	Search string
	Page   entity.Page
}

// CustomerUsecase defines a seller's customer book.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, userID uuid.UUID, input *ListCustomersInput) (*entity.PagedResult[*entity.Customer], error)
	GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, userID uuid.UUID, input *CustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, userID, customerID uuid.UUID, input *CustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error
}
