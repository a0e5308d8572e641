package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// FlagModel handles database operations for content flags.
type FlagModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewFlag creates a new flag model.
func NewFlag(db *bun.DB, logger *zap.Logger) *FlagModel {
	return &FlagModel{
		db:     db,
		logger: logger.Named("db_flag"),
	}
}

// Insert stores a new flag in pending status.
func (r *FlagModel) Insert(ctx context.Context, flag *types.Flag) error {
	now := time.Now()
	if flag.ID == "" {
		flag.ID = uuid.New().String()
	}

	flag.Status = enum.FlagStatusPending
	flag.CreatedAt = now
	flag.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(flag).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert flag: %w", err)
	}

	return nil
}

// GetByID retrieves a flag by id.
func (r *FlagModel) GetByID(ctx context.Context, id string) (*types.Flag, error) {
	flag := new(types.Flag)

	err := r.db.NewSelect().
		Model(flag).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrFlagNotFound
		}

		return nil, fmt.Errorf("failed to get flag: %w", err)
	}

	return flag, nil
}

// GetByStatus retrieves flags in the given status, oldest first so the
// moderation queue drains in filing order.
func (r *FlagModel) GetByStatus(
	ctx context.Context, status enum.FlagStatus, limit int,
) ([]*types.Flag, error) {
	var flags []*types.Flag

	err := r.db.NewSelect().
		Model(&flags).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get flags by status: %w", err)
	}

	return flags, nil
}

// HasOpenFlag reports whether the reporter already has a pending or
// reviewed flag against the target. Used to prevent duplicate reports.
func (r *FlagModel) HasOpenFlag(
	ctx context.Context, reporterID string, targetType enum.TargetType, targetID string,
) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*types.Flag)(nil)).
		Where("reporter_id = ?", reporterID).
		Where("target_type = ?", targetType).
		Where("target_id = ?", targetID).
		Where("status IN (?)", bun.In([]enum.FlagStatus{enum.FlagStatusPending, enum.FlagStatusReviewed})).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing flag: %w", err)
	}

	return exists, nil
}

// UpdateStatus records a moderator decision on a flag.
func (r *FlagModel) UpdateStatus(
	ctx context.Context, id string, status enum.FlagStatus, moderatorID, notes string,
) (*types.Flag, error) {
	flag := new(types.Flag)
	now := time.Now()

	err := r.db.NewUpdate().
		Model(flag).
		Set("status = ?", status).
		Set("moderator_id = ?", moderatorID).
		Set("moderator_notes = ?", notes).
		Set("reviewed_at = ?", sql.NullTime{Time: now, Valid: true}).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrFlagNotFound
		}

		return nil, fmt.Errorf("failed to update flag status: %w", err)
	}

	return flag, nil
}
