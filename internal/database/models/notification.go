package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// NotificationModel handles database operations for notifications.
type NotificationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewNotification creates a new notification model.
func NewNotification(db *bun.DB, logger *zap.Logger) *NotificationModel {
	return &NotificationModel{
		db:     db,
		logger: logger.Named("db_notification"),
	}
}

// Insert stores a new notification.
func (r *NotificationModel) Insert(ctx context.Context, notification *types.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	notification.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(notification).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's notifications, newest first.
func (r *NotificationModel) GetByUserID(
	ctx context.Context, userID string, unreadOnly bool, limit int,
) ([]*types.Notification, error) {
	var notifications []*types.Notification

	q := r.db.NewSelect().
		Model(&notifications).
		Where("user_id = ?", userID)

	if unreadOnly {
		q = q.Where("is_read = FALSE")
	}

	err := q.
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks the given notifications as read. An empty id list marks
// all of the user's notifications.
func (r *NotificationModel) MarkRead(ctx context.Context, userID string, ids []string) error {
	q := r.db.NewUpdate().
		Model((*types.Notification)(nil)).
		Set("is_read = TRUE").
		Where("user_id = ?", userID)

	if len(ids) > 0 {
		q = q.Where("id IN (?)", bun.In(ids))
	}

	_, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// CountUnread counts a user's unread notifications.
func (r *NotificationModel) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*types.Notification)(nil)).
		Where("user_id = ?", userID).
		Where("is_read = FALSE").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return int64(count), nil
}

// DeleteOlderThan removes notifications past the retention window.
func (r *NotificationModel) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*types.Notification)(nil)).
		Where("created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, nil //nolint:nilerr // row count is informational only
	}

	return rows, nil
}
