package repository

import (
	"context"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// ListNotifications returns a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.Page) ([]*entity.Notification, int64, error)

	// CountUnread counts unread notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification as read.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error

	// MarkAllRead marks every unread notification of a user as read and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error
}
