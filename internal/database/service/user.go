package service

import (
	"context"
	"strings"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"go.uber.org/zap"
)

// UserService handles profile sync, lookups and the leaderboard.
type UserService struct {
	users  *models.UserModel
	badges *BadgeService
	logger *zap.Logger
}

// NewUser creates a new user service.
func NewUser(users *models.UserModel, badges *BadgeService, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		badges: badges,
		logger: logger.Named("user_service"),
	}
}

// Sync upserts the user's profile from the identity provider. Counters,
// badges and reputation are never touched by a sync: only profile fields
// change on conflict.
func (s *UserService) Sync(ctx context.Context, user *types.User) (*types.User, error) {
	if strings.TrimSpace(user.ID) == "" {
		return nil, types.ErrUnauthenticated
	}

	if user.PreferredRegion != "" && !types.IsValidRegion(user.PreferredRegion) {
		return nil, types.ErrInvalidRegion
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return s.users.GetByID(ctx, user.ID)
}

// Get loads a user profile.
func (s *UserService) Get(ctx context.Context, userID string) (*types.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Leaderboard ranks users by the requested contribution dimension.
func (s *UserService) Leaderboard(
	ctx context.Context, sortBy enum.LeaderboardSort, limit int,
) ([]*types.User, error) {
	if !sortBy.IsALeaderboardSort() {
		sortBy = enum.LeaderboardSortReputation
	}

	if limit <= 0 {
		limit = 25
	}

	return s.users.GetLeaderboard(ctx, sortBy, limit)
}

// BadgeProgress reports the user's standing against the badge catalog.
func (s *UserService) BadgeProgress(ctx context.Context, userID string) ([]types.BadgeProgress, error) {
	return s.badges.Progress(ctx, userID)
}

// Deactivate soft-deletes a user account.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	if err := s.users.Deactivate(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("Deactivated user", zap.String("userID", userID))

	return nil
}
