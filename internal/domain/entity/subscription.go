package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionRequestStatus is the lifecycle of an upgrade request.
type SubscriptionRequestStatus string

const (
	SubscriptionRequestPending  SubscriptionRequestStatus = "PENDING"
	SubscriptionRequestApproved SubscriptionRequestStatus = "APPROVED"
	SubscriptionRequestRejected SubscriptionRequestStatus = "REJECTED"
)

// SubscriptionRequest is a seller's request to move onto a paid plan. It is
// resolved together with its PaymentTransaction.
type SubscriptionRequest struct {
	ID                   uuid.UUID                 `json:"id"`
	ProfileID            uuid.UUID                 `json:"profile_id"`
	PlanID               uuid.UUID                 `json:"plan_id"`
	PaymentTransactionID uuid.UUID                 `json:"payment_transaction_id"`
	Status               SubscriptionRequestStatus `json:"status"`
	ResolvedAt           *time.Time                `json:"resolved_at,omitempty"`
	ResolvedBy           *uuid.UUID                `json:"resolved_by,omitempty"`
	Plan                 *SubscriptionPlan         `json:"plan,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

// PaymentTransactionStatus is the verification state of a reported payment.
// Both verified and rejected are terminal.
type PaymentTransactionStatus string

const (
	PaymentTransactionPending  PaymentTransactionStatus = "pending"
	PaymentTransactionVerified PaymentTransactionStatus = "verified"
	PaymentTransactionRejected PaymentTransactionStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s PaymentTransactionStatus) IsTerminal() bool {
	return s == PaymentTransactionVerified || s == PaymentTransactionRejected
}

// MobilePaymentMethod is the channel a subscription fee was paid through.
type MobilePaymentMethod string

const (
	MobilePaymentBkash  MobilePaymentMethod = "bkash"
	MobilePaymentNagad  MobilePaymentMethod = "nagad"
	MobilePaymentRocket MobilePaymentMethod = "rocket"
	MobilePaymentBank   MobilePaymentMethod = "bank"
)

// PaymentTransaction is a seller-reported payment awaiting admin verification.
type PaymentTransaction struct {
	ID            uuid.UUID                `json:"id"`
	TransactionID string                   `json:"transaction_id"` // External reference from the payment provider, unique.
	ProfileID     uuid.UUID                `json:"profile_id"`
	PlanID        uuid.UUID                `json:"plan_id"`
	Amount        float64                  `json:"amount"`
	PaymentMethod MobilePaymentMethod      `json:"payment_method"`
	SenderNumber  string                   `json:"sender_number"`
	Status        PaymentTransactionStatus `json:"status"`
	Note          string                   `json:"note,omitempty"`
	VerifiedAt    *time.Time               `json:"verified_at,omitempty"`
	VerifiedBy    *uuid.UUID               `json:"verified_by,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}
