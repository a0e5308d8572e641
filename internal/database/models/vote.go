package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for the vote ledger.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// GetUserVote retrieves the user's current vote on a target.
// Returns nil without error when no vote exists.
func (r *VoteModel) GetUserVote(
	ctx context.Context, userID string, targetType enum.TargetType, targetID string,
) (*types.Vote, error) {
	vote := new(types.Vote)

	err := r.db.NewSelect().
		Model(vote).
		Where("user_id = ?", userID).
		Where("target_type = ?", targetType).
		Where("target_id = ?", targetID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user vote: %w", err)
	}

	return vote, nil
}

// Upsert creates the vote row or updates its polarity in place. The unique
// primary key on (user_id, target_type, target_id) turns a lost creation
// race into the update path instead of a constraint failure.
func (r *VoteModel) Upsert(ctx context.Context, vote *types.Vote) error {
	now := time.Now()
	vote.CreatedAt = now
	vote.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(vote).
		On("CONFLICT (user_id, target_type, target_id) DO UPDATE").
		Set("polarity = EXCLUDED.polarity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	return nil
}

// Delete removes the user's vote on a target. Used for retractions.
func (r *VoteModel) Delete(
	ctx context.Context, userID string, targetType enum.TargetType, targetID string,
) error {
	_, err := r.db.NewDelete().
		Model((*types.Vote)(nil)).
		Where("user_id = ?", userID).
		Where("target_type = ?", targetType).
		Where("target_id = ?", targetID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	return nil
}
