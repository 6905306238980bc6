package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentMethodNotFound is returned when a payment method is not found in the profile.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository defines the interface for shop payment method persistence.
type PaymentMethodRepository interface {
	CreatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) error
	FindPaymentMethodByID(ctx context.Context, profileID, id uuid.UUID) (*entity.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, profileID uuid.UUID, activeOnly bool) ([]*entity.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, profileID, id uuid.UUID) error
}
