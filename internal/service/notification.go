package service

import (
	"context"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// NotificationService exposes a principal's notification queue.
type NotificationService struct {
	notifications core.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(notifications core.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, principal auth.Principal) ([]model.Notification, error) {
	return s.notifications.ListByPrincipal(ctx, principal.Role, principal.ID)
}

// MarkRead flips the read flag on one of the caller's notifications.
func (s *NotificationService) MarkRead(ctx context.Context, principal auth.Principal, notificationID int64) error {
	return s.notifications.MarkRead(ctx, principal.Role, principal.ID, notificationID)
}
