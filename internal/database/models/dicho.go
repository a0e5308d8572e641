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

// DichoModel handles database operations for dichos.
type DichoModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewDicho creates a new dicho model.
func NewDicho(db *bun.DB, logger *zap.Logger) *DichoModel {
	return &DichoModel{
		db:     db,
		logger: logger.Named("db_dicho"),
	}
}

// Insert stores a new dicho.
func (r *DichoModel) Insert(ctx context.Context, dicho *types.Dicho) error {
	now := time.Now()
	if dicho.ID == "" {
		dicho.ID = uuid.New().String()
	}

	dicho.CreatedAt = now
	dicho.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(dicho).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert dicho: %w", err)
	}

	return nil
}

// GetByID retrieves an active dicho by id.
func (r *DichoModel) GetByID(ctx context.Context, id string) (*types.Dicho, error) {
	dicho := new(types.Dicho)

	err := r.db.NewSelect().
		Model(dicho).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrDichoNotFound
		}

		return nil, fmt.Errorf("failed to get dicho: %w", err)
	}

	return dicho, nil
}

// GetByTermID retrieves active dichos for a term sorted by score then
// recency, optionally filtered by region.
func (r *DichoModel) GetByTermID(ctx context.Context, termID, region string) ([]*types.Dicho, error) {
	var dichos []*types.Dicho

	q := r.db.NewSelect().
		Model(&dichos).
		Where("term_id = ?", termID).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("votes_score DESC", "created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dichos: %w", err)
	}

	return dichos, nil
}

// UpdateVoteCounters applies signed increments to the vote counters in a
// single atomic statement and recomputes score from the new values.
func (r *DichoModel) UpdateVoteCounters(
	ctx context.Context, id string, upDelta, downDelta int64,
) (*types.VoteCounters, error) {
	dicho := new(types.Dicho)

	err := r.db.NewUpdate().
		Model(dicho).
		Set("votes_up = GREATEST(0, votes_up + ?)", upDelta).
		Set("votes_down = GREATEST(0, votes_down + ?)", downDelta).
		Set("votes_score = GREATEST(0, votes_up + ?) - GREATEST(0, votes_down + ?)", upDelta, downDelta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("votes_up, votes_down, votes_score").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrDichoNotFound
		}

		return nil, fmt.Errorf("failed to update dicho vote counters: %w", err)
	}

	return &dicho.Votes, nil
}
