package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationPaymentVerified NotificationType = "payment_verified"
	NotificationPaymentRejected NotificationType = "payment_rejected"
	NotificationNewOrder        NotificationType = "new_order"
	NotificationSystem          NotificationType = "system"
)

// Notification is an in-app message for a seller.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
