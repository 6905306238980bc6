package repository

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionRequestNotFound is returned when a subscription request is not found.
	ErrSubscriptionRequestNotFound = errors.New("subscription request not found")
	// ErrPaymentTransactionNotFound is returned when a payment transaction is not found.
	ErrPaymentTransactionNotFound = errors.New("payment transaction not found")
	// ErrDuplicateTransactionID is returned when a transaction reference was already submitted.
	ErrDuplicateTransactionID = errors.New("transaction id already exists")
)

// SubscriptionRequestFilter narrows request listings.
type SubscriptionRequestFilter struct {
	ProfileID *uuid.UUID
	Status    entity.SubscriptionRequestStatus
	Page      entity.Page
}

// SubscriptionRequestRepository defines the interface for upgrade request persistence.
type SubscriptionRequestRepository interface {
	// CreateSubscriptionRequest persists a new request.
	CreateSubscriptionRequest(ctx context.Context, request *entity.SubscriptionRequest) error

	// FindLatestApprovedRequest returns the newest APPROVED request of a profile with its plan loaded.
	FindLatestApprovedRequest(ctx context.Context, profileID uuid.UUID) (*entity.SubscriptionRequest, error)

	// FindRequestByPaymentTransaction returns the request linked to a payment transaction.
	FindRequestByPaymentTransaction(ctx context.Context, paymentTransactionID uuid.UUID) (*entity.SubscriptionRequest, error)

	// CountPendingRequests counts PENDING requests of a profile.
	CountPendingRequests(ctx context.Context, profileID uuid.UUID) (int64, error)

	// ResolveRequest moves a PENDING request to status. It returns the number of rows changed.
	ResolveRequest(ctx context.Context, id uuid.UUID, status entity.SubscriptionRequestStatus, adminID uuid.UUID, at time.Time) (int64, error)

	// ListRequests returns requests matching filter, newest first, with the total count.
	ListRequests(ctx context.Context, filter SubscriptionRequestFilter) ([]*entity.SubscriptionRequest, int64, error)
}

// PaymentTransactionFilter narrows transaction listings.
type PaymentTransactionFilter struct {
	ProfileID *uuid.UUID
	Status    entity.PaymentTransactionStatus
	Page      entity.Page
}

// PaymentTransactionRepository defines the interface for reported payment persistence.
type PaymentTransactionRepository interface {
	// CreatePaymentTransaction persists a new pending transaction.
	CreatePaymentTransaction(ctx context.Context, txn *entity.PaymentTransaction) error

	// FindByTransactionID retrieves a transaction by its external reference, read from the primary.
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.PaymentTransaction, error)

	// CompareAndSetStatus updates the status only while the row is still pending.
	// It returns the number of rows changed, which is 0 when another caller won.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, status entity.PaymentTransactionStatus, note string, adminID uuid.UUID, at time.Time) (int64, error)

	// ListTransactions returns transactions matching filter, newest first, with the total count.
	ListTransactions(ctx context.Context, filter PaymentTransactionFilter) ([]*entity.PaymentTransaction, int64, error)
}
