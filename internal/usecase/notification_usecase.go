package usecase

import (
	"context"

	"cashmemo/internal/domain/entity"

	"github.com/google/uuid"
)

// ListNotificationsInput narrows in-app notification listings.
type ListNotificationsInput struct {
	UnreadOnly bool
	Page       entity.Page
}

// NotificationUsecase defines the seller's in-app notification inbox.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, input *ListNotificationsInput) (*entity.PagedResult[*entity.Notification], error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
