package impl

import (
	"context"
	"log/slog"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewNotificationService creates a new notification inbox service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, input *usecase.ListNotificationsInput) (*entity.PagedResult[*entity.Notification], error) {
	page := normalizePage(input.Page)
	notifications, total, err := srv.repos.NotificationRepo().ListNotifications(ctx, userID, input.UnreadOnly, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return newPagedResult(notifications, total, page), nil
}

func (srv *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.repos.NotificationRepo().CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.repos.NotificationRepo().MarkRead(ctx, userID, notificationID); err != nil {
		return mapRepoErr(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to mark notification read")
	}

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	changed, err := srv.repos.NotificationRepo().MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	return changed, nil
}

func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.repos.NotificationRepo().DeleteNotification(ctx, userID, notificationID); err != nil {
		return mapRepoErr(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to delete notification")
	}

	return nil
}
