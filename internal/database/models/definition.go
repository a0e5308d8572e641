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

// DefinitionModel handles database operations for definitions.
type DefinitionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewDefinition creates a new definition model.
func NewDefinition(db *bun.DB, logger *zap.Logger) *DefinitionModel {
	return &DefinitionModel{
		db:     db,
		logger: logger.Named("db_definition"),
	}
}

// Insert stores a new definition.
func (r *DefinitionModel) Insert(ctx context.Context, definition *types.Definition) error {
	now := time.Now()
	if definition.ID == "" {
		definition.ID = uuid.New().String()
	}

	definition.CreatedAt = now
	definition.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(definition).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert definition: %w", err)
	}

	return nil
}

// GetByID retrieves an active definition by id.
func (r *DefinitionModel) GetByID(ctx context.Context, id string) (*types.Definition, error) {
	definition := new(types.Definition)

	err := r.db.NewSelect().
		Model(definition).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrDefinitionNotFound
		}

		return nil, fmt.Errorf("failed to get definition: %w", err)
	}

	return definition, nil
}

// GetByTermID retrieves active definitions for a term sorted by score then
// recency, optionally filtered by region.
func (r *DefinitionModel) GetByTermID(ctx context.Context, termID, region string) ([]*types.Definition, error) {
	var definitions []*types.Definition

	q := r.db.NewSelect().
		Model(&definitions).
		Where("term_id = ?", termID).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("votes_score DESC", "created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get definitions: %w", err)
	}

	return definitions, nil
}

// GetBestForTerm retrieves the highest-voted active definition for a term,
// most recent first on ties.
func (r *DefinitionModel) GetBestForTerm(ctx context.Context, termID string) (*types.Definition, error) {
	definition := new(types.Definition)

	err := r.db.NewSelect().
		Model(definition).
		Where("term_id = ?", termID).
		Where("is_active = TRUE").
		Order("votes_score DESC", "created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrDefinitionNotFound
		}

		return nil, fmt.Errorf("failed to get best definition: %w", err)
	}

	return definition, nil
}

// UpdateVoteCounters applies signed increments to the vote counters in a
// single atomic statement and recomputes score from the new counter values.
// The GREATEST clamp is a safety net only: correct ledger transitions never
// drive a counter negative, so a triggered clamp indicates a ledger bug;
// the vote service detects the resulting score mismatch and logs a warning.
func (r *DefinitionModel) UpdateVoteCounters(
	ctx context.Context, id string, upDelta, downDelta int64,
) (*types.VoteCounters, error) {
	definition := new(types.Definition)

	err := r.db.NewUpdate().
		Model(definition).
		Set("votes_up = GREATEST(0, votes_up + ?)", upDelta).
		Set("votes_down = GREATEST(0, votes_down + ?)", downDelta).
		Set("votes_score = GREATEST(0, votes_up + ?) - GREATEST(0, votes_down + ?)", upDelta, downDelta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("votes_up, votes_down, votes_score").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrDefinitionNotFound
		}

		return nil, fmt.Errorf("failed to update definition vote counters: %w", err)
	}

	return &definition.Votes, nil
}

// CountForTerm counts active definitions for a term.
func (r *DefinitionModel) CountForTerm(ctx context.Context, termID string) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*types.Definition)(nil)).
		Where("term_id = ?", termID).
		Where("is_active = TRUE").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count definitions: %w", err)
	}

	return int64(count), nil
}

// SumVotesForTerm aggregates up/down vote totals over a term's active
// definitions.
func (r *DefinitionModel) SumVotesForTerm(ctx context.Context, termID string) (up, down int64, err error) {
	err = r.db.NewSelect().
		Model((*types.Definition)(nil)).
		ColumnExpr("COALESCE(SUM(votes_up), 0)").
		ColumnExpr("COALESCE(SUM(votes_down), 0)").
		Where("term_id = ?", termID).
		Where("is_active = TRUE").
		Scan(ctx, &up, &down)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum votes for term: %w", err)
	}

	return up, down, nil
}

// GetTermActivity groups definitions created since windowStart by term and
// returns per-term aggregates for trending computation.
func (r *DefinitionModel) GetTermActivity(
	ctx context.Context, windowStart time.Time, region string,
) ([]*types.TermActivity, error) {
	var activity []*types.TermActivity

	q := r.db.NewSelect().
		Model((*types.Definition)(nil)).
		ColumnExpr("term_id").
		ColumnExpr("COUNT(*) AS definition_count").
		ColumnExpr("COALESCE(SUM(votes_score), 0) AS total_vote_score").
		ColumnExpr("MAX(created_at) AS latest_activity").
		Where("created_at >= ?", windowStart).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		GroupExpr("term_id").
		Scan(ctx, &activity)
	if err != nil {
		return nil, fmt.Errorf("failed to get term activity: %w", err)
	}

	return activity, nil
}

// GetTrending retrieves positively-scored definitions created since
// windowStart, sorted by score then recency.
func (r *DefinitionModel) GetTrending(
	ctx context.Context, windowStart time.Time, region string, limit int,
) ([]*types.Definition, error) {
	var definitions []*types.Definition

	q := r.db.NewSelect().
		Model(&definitions).
		Where("created_at >= ?", windowStart).
		Where("is_active = TRUE").
		Where("votes_score > 0")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("votes_score DESC", "created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending definitions: %w", err)
	}

	return definitions, nil
}
