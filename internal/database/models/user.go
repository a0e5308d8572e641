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

// contributionColumns maps each contribution kind to its counter column.
var contributionColumns = map[enum.ContributionKind]string{
	enum.ContributionKindTerms:       "contrib_terms_submitted",
	enum.ContributionKindDefinitions: "contrib_definitions_submitted",
	enum.ContributionKindVotes:       "contrib_votes_given",
	enum.ContributionKindComments:    "contrib_comments_posted",
	enum.ContributionKindDichos:      "contrib_dichos_submitted",
}

// leaderboardColumns maps each leaderboard sort key to its column.
var leaderboardColumns = map[enum.LeaderboardSort]string{
	enum.LeaderboardSortReputation:  "reputation",
	enum.LeaderboardSortTerms:       "contrib_terms_submitted",
	enum.LeaderboardSortDefinitions: "contrib_definitions_submitted",
	enum.LeaderboardSortVotes:       "contrib_votes_given",
	enum.LeaderboardSortComments:    "contrib_comments_posted",
	enum.LeaderboardSortDichos:      "contrib_dichos_submitted",
}

// UserModel handles database operations for users.
type UserModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUser creates a new user model.
func NewUser(db *bun.DB, logger *zap.Logger) *UserModel {
	return &UserModel{
		db:     db,
		logger: logger.Named("db_user"),
	}
}

// GetByID retrieves a user by their identity-provider id.
func (r *UserModel) GetByID(ctx context.Context, id string) (*types.User, error) {
	user := new(types.User)

	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Upsert creates the user row or refreshes its profile fields. Counter,
// badge and reputation columns are never touched by profile sync.
func (r *UserModel) Upsert(ctx context.Context, user *types.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(user).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("email = EXCLUDED.email").
		Set("username = EXCLUDED.username").
		Set("avatar = EXCLUDED.avatar").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// IncrementContribution atomically adds delta to the named contribution
// counter. Contribution counters are monotonic; callers only pass positive
// deltas.
func (r *UserModel) IncrementContribution(
	ctx context.Context, userID string, kind enum.ContributionKind, delta int64,
) error {
	column, ok := contributionColumns[kind]
	if !ok {
		return fmt.Errorf("unknown contribution kind: %s", kind)
	}

	res, err := r.db.NewUpdate().
		Model((*types.User)(nil)).
		Set(fmt.Sprintf("%s = %s + ?", column, column), delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment contribution counter: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return types.ErrUserNotFound
	}

	return nil
}

// UpdateReputation stores a freshly recomputed reputation value.
func (r *UserModel) UpdateReputation(ctx context.Context, userID string, reputation int64) error {
	_, err := r.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("reputation = ?", reputation).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update reputation: %w", err)
	}

	return nil
}

// AddBadge appends a badge id to the user's badge set if not already
// present. The predicate makes a repeated award a no-op, which keeps the
// badge set an idempotent, monotonically growing union.
func (r *UserModel) AddBadge(ctx context.Context, userID, badgeID string) error {
	_, err := r.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("badges = array_append(badges, ?)", badgeID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Where("NOT (? = ANY(badges))", badgeID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add badge: %w", err)
	}

	return nil
}

// GetLeaderboard retrieves the top active users ordered by the given sort
// key.
func (r *UserModel) GetLeaderboard(
	ctx context.Context, sortBy enum.LeaderboardSort, limit int,
) ([]*types.User, error) {
	column, ok := leaderboardColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard sort: %s", sortBy)
	}

	var users []*types.User

	err := r.db.NewSelect().
		Model(&users).
		Where("is_active = TRUE").
		OrderExpr(fmt.Sprintf("%s DESC", column)).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return users, nil
}

// Deactivate soft-deletes a user.
func (r *UserModel) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}
