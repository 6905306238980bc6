package impl

import (
	"context"
	"log/slog"
	"strings"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type customerService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *customerService) ListCustomers(ctx context.Context, userID uuid.UUID, input *usecase.ListCustomersInput) (*entity.PagedResult[*entity.Customer], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	page := normalizePage(input.Page)
	customers, total, err := srv.repos.CustomerRepo().ListCustomers(ctx, shop.ID, strings.TrimSpace(input.Search), page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return newPagedResult(customers, total, page), nil
}

func (srv *customerService) GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	customer, err := srv.repos.CustomerRepo().FindCustomerByID(ctx, shop.ID, customerID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input *usecase.CustomerInput) (*entity.Customer, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{ProfileID: shop.ID}
	if err := applyCustomerInput(customer, input); err != nil {
		return nil, err
	}

	if err := srv.repos.CustomerRepo().CreateCustomer(ctx, customer); err != nil {
		return nil, mapRepoErr(err, repository.ErrDuplicateCustomerMobile, duplicateMobile(), "failed to create customer")
	}

	return customer, nil
}

func (srv *customerService) UpdateCustomer(ctx context.Context, userID, customerID uuid.UUID, input *usecase.CustomerInput) (*entity.Customer, error) {
	customer, err := srv.GetCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if err := applyCustomerInput(customer, input); err != nil {
		return nil, err
	}

	if err := srv.repos.CustomerRepo().UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, mapRepoErr(err, repository.ErrDuplicateCustomerMobile, duplicateMobile(), "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.repos.CustomerRepo().DeleteCustomer(ctx, shop.ID, customerID); err != nil {
		return mapRepoErr(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to delete customer")
	}

	return nil
}

func applyCustomerInput(customer *entity.Customer, input *usecase.CustomerInput) error {
	name := strings.TrimSpace(input.Name)
	mobile := strings.TrimSpace(input.Mobile)
	if name == "" || mobile == "" {
		return domainerrors.NewValidationError("name and mobile are required")
	}

	customer.Name = name
	customer.Mobile = mobile
	customer.Email = normalizeEmail(input.Email)
	customer.Address = strings.TrimSpace(input.Address)
	customer.Note = strings.TrimSpace(input.Note)

	return nil
}

func duplicateMobile() *domainerrors.BaseError {
	return domainerrors.ErrConflict.WithDetails("a customer with this mobile already exists")
}
