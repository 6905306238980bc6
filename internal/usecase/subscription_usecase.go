package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitSubscriptionInput is a seller's report of a plan fee paid through a mobile wallet or bank.
type SubmitSubscriptionInput struct {
	PlanID        uuid.UUID
	TransactionID string
	Amount        float64
	PaymentMethod entity.MobilePaymentMethod
	SenderNumber  string
}

// SubmitSubscriptionOutput returns the request together with the transaction awaiting review.
type SubmitSubscriptionOutput struct {
	Request     *entity.SubscriptionRequest `json:"request"`
	Transaction *entity.PaymentTransaction  `json:"transaction"`
}

// VerifyTransactionInput is an administrator's decision on a reported payment.
type VerifyTransactionInput struct {
	TransactionID string
	Status        entity.PaymentTransactionStatus
	Note          string
}

// VerifyTransactionOutput returns the decided transaction.
type VerifyTransactionOutput struct {
	Transaction *entity.PaymentTransaction `json:"transaction"`
	Message     string                     `json:"message"`
}

// ListTransactionsInput narrows transaction listings.
type ListTransactionsInput struct {
	Status entity.PaymentTransactionStatus
	Page   entity.Page
}

// ListSubscriptionRequestsInput narrows request listings.
type ListSubscriptionRequestsInput struct {
	Status entity.SubscriptionRequestStatus
	Page   entity.Page
}

// SubscriptionUsecase covers plan upgrades and the payment verification workflow.
type SubscriptionUsecase interface {
	// ListPlans returns the active plan catalogue.
	ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error)

	SubmitSubscriptionRequest(ctx context.Context, userID uuid.UUID, input *SubmitSubscriptionInput) (*SubmitSubscriptionOutput, error)
	ListMySubscriptionRequests(ctx context.Context, userID uuid.UUID, input *ListSubscriptionRequestsInput) (*entity.PagedResult[*entity.SubscriptionRequest], error)
	ListMyTransactions(ctx context.Context, userID uuid.UUID, input *ListTransactionsInput) (*entity.PagedResult[*entity.PaymentTransaction], error)

	// VerifyTransaction moves a pending transaction to verified or rejected exactly once.
	// Verification grants Pro for one calendar month from now.
	VerifyTransaction(ctx context.Context, adminID uuid.UUID, input *VerifyTransactionInput) (*VerifyTransactionOutput, error)
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*entity.PagedResult[*entity.PaymentTransaction], error)
	ListSubscriptionRequests(ctx context.Context, input *ListSubscriptionRequestsInput) (*entity.PagedResult[*entity.SubscriptionRequest], error)
}
