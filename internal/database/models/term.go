package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/pkg/utils"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TermModel handles database operations for terms.
type TermModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTerm creates a new term model.
func NewTerm(db *bun.DB, logger *zap.Logger) *TermModel {
	return &TermModel{
		db:     db,
		logger: logger.Named("db_term"),
	}
}

// Insert stores a new term. The word is lowercased before storage and its
// folded form is derived alongside, so lookups are case and accent
// insensitive by construction.
func (r *TermModel) Insert(ctx context.Context, term *types.Term) error {
	now := time.Now()
	if term.ID == "" {
		term.ID = uuid.New().String()
	}

	term.Word = utils.NormalizeWord(term.Word)
	term.WordFolded = utils.FoldAccents(term.Word)
	term.CreatedAt = now
	term.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(term).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert term: %w", err)
	}

	return nil
}

// GetByID retrieves an active term by id.
func (r *TermModel) GetByID(ctx context.Context, id string) (*types.Term, error) {
	term := new(types.Term)

	err := r.db.NewSelect().
		Model(term).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTermNotFound
		}

		return nil, fmt.Errorf("failed to get term: %w", err)
	}

	return term, nil
}

// GetByIDs retrieves active terms for a set of ids, keyed by id.
func (r *TermModel) GetByIDs(ctx context.Context, ids []string) (map[string]*types.Term, error) {
	if len(ids) == 0 {
		return map[string]*types.Term{}, nil
	}

	var terms []*types.Term

	err := r.db.NewSelect().
		Model(&terms).
		Where("id IN (?)", bun.In(ids)).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get terms: %w", err)
	}

	result := make(map[string]*types.Term, len(terms))
	for _, t := range terms {
		result[t.ID] = t
	}

	return result, nil
}

// GetByWord retrieves an active term by word, matched accent-insensitively,
// optionally scoped to a region.
func (r *TermModel) GetByWord(ctx context.Context, word, region string) (*types.Term, error) {
	term := new(types.Term)

	q := r.db.NewSelect().
		Model(term).
		Where("word_folded = ?", utils.NormalizeQuery(word)).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTermNotFound
		}

		return nil, fmt.Errorf("failed to get term by word: %w", err)
	}

	return term, nil
}

// Exists reports whether an active term already exists for (word, region).
// The check folds accents, so "güey" and "guey" count as the same word.
func (r *TermModel) Exists(ctx context.Context, word, region string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*types.Term)(nil)).
		Where("word_folded = ?", utils.NormalizeQuery(word)).
		Where("region = ?", region).
		Where("is_active = TRUE").
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check term existence: %w", err)
	}

	return exists, nil
}

// Search finds active terms whose word, tags or synonyms match the query
// substring, optionally filtered by region.
func (r *TermModel) Search(ctx context.Context, query, region string, limit int) ([]*types.Term, error) {
	var terms []*types.Term

	pattern := "%" + utils.NormalizeQuery(query) + "%"

	q := r.db.NewSelect().
		Model(&terms).
		Where("is_active = TRUE").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("word_folded LIKE ?", pattern).
				WhereOr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag LIKE ?)", pattern).
				WhereOr("EXISTS (SELECT 1 FROM unnest(synonyms) AS synonym WHERE synonym LIKE ?)", pattern)
		})

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("word ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search terms: %w", err)
	}

	return terms, nil
}

// Autocomplete finds active terms whose word starts with the given prefix.
func (r *TermModel) Autocomplete(ctx context.Context, prefix, region string, limit int) ([]*types.Term, error) {
	var terms []*types.Term

	q := r.db.NewSelect().
		Model(&terms).
		Column("id", "word", "region").
		Where("word_folded LIKE ?", utils.NormalizeQuery(prefix)+"%").
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("word ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to autocomplete terms: %w", err)
	}

	return terms, nil
}

// ListRecent returns active terms newest first, optionally filtered by
// region, with offset pagination for the browse view.
func (r *TermModel) ListRecent(ctx context.Context, region string, limit, offset int) ([]*types.Term, error) {
	var terms []*types.Term

	q := r.db.NewSelect().
		Model(&terms).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}

	return terms, nil
}

// CountEligible counts active terms that have at least one active
// definition, optionally filtered by region. This is the word-of-day
// eligibility set.
func (r *TermModel) CountEligible(ctx context.Context, region string) (int64, error) {
	q := r.db.NewSelect().
		Model((*types.Term)(nil)).
		Where("term.is_active = TRUE").
		Where("EXISTS (SELECT 1 FROM definitions AS d WHERE d.term_id = term.id AND d.is_active = TRUE)")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("term.region = ?", region)
	}

	count, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count eligible terms: %w", err)
	}

	return int64(count), nil
}

// GetEligibleByOrdinal returns the eligible term at the given ordinal
// position under the stable (created_at, id) enumeration order. The order
// must stay fixed across calls so that date-seeded selection is
// reproducible.
func (r *TermModel) GetEligibleByOrdinal(ctx context.Context, region string, ordinal int64) (*types.Term, error) {
	term := new(types.Term)

	q := r.db.NewSelect().
		Model(term).
		Where("term.is_active = TRUE").
		Where("EXISTS (SELECT 1 FROM definitions AS d WHERE d.term_id = term.id AND d.is_active = TRUE)")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("term.region = ?", region)
	}

	err := q.
		Order("created_at ASC", "id ASC").
		Offset(int(ordinal)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNoEligibleTerms
		}

		return nil, fmt.Errorf("failed to get eligible term: %w", err)
	}

	return term, nil
}

// GetRandom returns one active term selected by a random offset.
func (r *TermModel) GetRandom(ctx context.Context, region string) (*types.Term, error) {
	term := new(types.Term)

	q := r.db.NewSelect().
		Model(term).
		Where("is_active = TRUE")

	if region != "" && region != types.RegionGeneral {
		q = q.Where("region = ?", region)
	}

	err := q.
		OrderExpr("random()").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTermNotFound
		}

		return nil, fmt.Errorf("failed to get random term: %w", err)
	}

	return term, nil
}

// Deactivate soft-deletes a term.
func (r *TermModel) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.NewUpdate().
		Model((*types.Term)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate term: %w", err)
	}

	return nil
}
