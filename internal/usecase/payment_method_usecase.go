package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentMethodInput carries payment method fields. On update, nil IsActive is left unchanged.
type PaymentMethodInput struct {
	Type          string
	AccountName   string
	AccountNumber string
	Instructions  string
	IsActive      *bool
}

// PaymentMethodUsecase defines the channels a shop accepts money through.
type PaymentMethodUsecase interface {
	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, userID uuid.UUID, input *PaymentMethodInput) (*entity.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, userID, methodID uuid.UUID, input *PaymentMethodInput) (*entity.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error
}
