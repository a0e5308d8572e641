package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentModel handles database operations for comments.
type CommentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewComment creates a new comment model.
func NewComment(db *bun.DB, logger *zap.Logger) *CommentModel {
	return &CommentModel{
		db:     db,
		logger: logger.Named("db_comment"),
	}
}

// Insert stores a new comment.
func (r *CommentModel) Insert(ctx context.Context, comment *types.Comment) error {
	now := time.Now()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(comment).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves an active comment by id.
func (r *CommentModel) GetByID(ctx context.Context, id string) (*types.Comment, error) {
	comment := new(types.Comment)

	err := r.db.NewSelect().
		Model(comment).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrCommentNotFound
		}

		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// GetByDefinitionID retrieves active comments for a definition sorted by
// score then recency. When parentID is empty only top-level comments are
// returned; otherwise only replies to that parent.
func (r *CommentModel) GetByDefinitionID(
	ctx context.Context, definitionID, parentID string,
) ([]*types.Comment, error) {
	var comments []*types.Comment

	q := r.db.NewSelect().
		Model(&comments).
		Where("definition_id = ?", definitionID).
		Where("is_active = TRUE")

	if parentID == "" {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", parentID)
	}

	err := q.
		Order("votes_score DESC", "created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// UpdateVoteCounters applies signed increments to the vote counters in a
// single atomic statement and recomputes score from the new values.
func (r *CommentModel) UpdateVoteCounters(
	ctx context.Context, id string, upDelta, downDelta int64,
) (*types.VoteCounters, error) {
	comment := new(types.Comment)

	err := r.db.NewUpdate().
		Model(comment).
		Set("votes_up = GREATEST(0, votes_up + ?)", upDelta).
		Set("votes_down = GREATEST(0, votes_down + ?)", downDelta).
		Set("votes_score = GREATEST(0, votes_up + ?) - GREATEST(0, votes_down + ?)", upDelta, downDelta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("votes_up, votes_down, votes_score").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrCommentNotFound
		}

		return nil, fmt.Errorf("failed to update comment vote counters: %w", err)
	}

	return &comment.Votes, nil
}
