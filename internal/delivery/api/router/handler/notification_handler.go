package handler

import (
	"strconv"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the seller's in-app inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// ListNotifications lists notifications, newest first. ?unread=true keeps unread ones only.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))

	result, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, &usecase.ListNotificationsInput{
		UnreadOnly: unreadOnly,
		Page:       pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// CountUnread returns the unread badge count.
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"count": count})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Notification marked as read")
}

// MarkAllRead marks every unread notification as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"updated": updated})
}

// DeleteNotification removes a notification.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Notification deleted")
}
