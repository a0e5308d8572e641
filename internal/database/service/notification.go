package service

import (
	"context"
	"strings"
	"time"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"go.uber.org/zap"
)

// NotificationService exposes a user's notification inbox.
type NotificationService struct {
	notifications *models.NotificationModel
	logger        *zap.Logger
}

// NewNotification creates a new notification service.
func NewNotification(notifications *models.NotificationModel, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger.Named("notification_service"),
	}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(
	ctx context.Context, userID string, unreadOnly bool, limit int,
) ([]*types.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	if limit <= 0 {
		limit = 50
	}

	return s.notifications.GetByUserID(ctx, userID, unreadOnly, limit)
}

// MarkRead marks the given notifications as read; an empty id list marks
// the whole inbox.
func (s *NotificationService) MarkRead(ctx context.Context, userID string, ids []string) error {
	if strings.TrimSpace(userID) == "" {
		return types.ErrUnauthenticated
	}

	return s.notifications.MarkRead(ctx, userID, ids)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, types.ErrUnauthenticated
	}

	return s.notifications.CountUnread(ctx, userID)
}

// PruneOlderThan deletes notifications created before the retention cutoff.
func (s *NotificationService) PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	deleted, err := s.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("Pruned old notifications",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}

	return deleted, nil
}
