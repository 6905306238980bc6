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

type paymentMethodService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// PaymentMethodServiceParams holds dependencies for PaymentMethodService, injected by Fx.
type PaymentMethodServiceParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewPaymentMethodService creates a new payment method service instance
func NewPaymentMethodService(params PaymentMethodServiceParams) usecase.PaymentMethodUsecase {
	return &paymentMethodService{
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *paymentMethodService) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	methods, err := srv.repos.PaymentMethodRepo().ListPaymentMethods(ctx, shop.ID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return nonNil(methods), nil
}

func (srv *paymentMethodService) CreatePaymentMethod(ctx context.Context, userID uuid.UUID, input *usecase.PaymentMethodInput) (*entity.PaymentMethod, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	method := &entity.PaymentMethod{ProfileID: shop.ID, IsActive: true}
	if err := applyPaymentMethodInput(method, input); err != nil {
		return nil, err
	}

	if err := srv.repos.PaymentMethodRepo().CreatePaymentMethod(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to create payment method")
	}

	return method, nil
}

func (srv *paymentMethodService) UpdatePaymentMethod(ctx context.Context, userID, methodID uuid.UUID, input *usecase.PaymentMethodInput) (*entity.PaymentMethod, error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	method, err := srv.repos.PaymentMethodRepo().FindPaymentMethodByID(ctx, shop.ID, methodID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrPaymentMethodNotFound, domainerrors.ErrPaymentMethodNotFound, "failed to find payment method")
	}

	if err := applyPaymentMethodInput(method, input); err != nil {
		return nil, err
	}

	if err := srv.repos.PaymentMethodRepo().UpdatePaymentMethod(ctx, method); err != nil {
		return nil, mapRepoErr(err, repository.ErrPaymentMethodNotFound, domainerrors.ErrPaymentMethodNotFound, "failed to update payment method")
	}

	return method, nil
}

func (srv *paymentMethodService) DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return err
	}

	if err := srv.repos.PaymentMethodRepo().DeletePaymentMethod(ctx, shop.ID, methodID); err != nil {
		return mapRepoErr(err, repository.ErrPaymentMethodNotFound, domainerrors.ErrPaymentMethodNotFound, "failed to delete payment method")
	}

	return nil
}

func applyPaymentMethodInput(method *entity.PaymentMethod, input *usecase.PaymentMethodInput) error {
	methodType := strings.ToLower(strings.TrimSpace(input.Type))
	accountNumber := strings.TrimSpace(input.AccountNumber)
	if methodType == "" || accountNumber == "" {
		return domainerrors.NewValidationError("type and account_number are required")
	}

	method.Type = methodType
	method.AccountNumber = accountNumber
	method.AccountName = strings.TrimSpace(input.AccountName)
	method.Instructions = strings.TrimSpace(input.Instructions)
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	return nil
}
