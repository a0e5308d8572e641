package service

import (
	"context"

	"github.com/jergadic/jergadic/internal/badge"
	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"go.uber.org/zap"
)

// BadgeService evaluates the badge catalog against user snapshots and
// awards newly earned badges. Awards are monotonic: a badge is never
// revoked once granted, even if the user later drops below its thresholds.
type BadgeService struct {
	users         *models.UserModel
	notifications *models.NotificationModel
	logger        *zap.Logger
}

// NewBadge creates a new badge service.
func NewBadge(users *models.UserModel, notifications *models.NotificationModel, logger *zap.Logger) *BadgeService {
	return &BadgeService{
		users:         users,
		notifications: notifications,
		logger:        logger.Named("badge_service"),
	}
}

// Evaluate checks the full catalog against the user's current counters and
// awards every eligible badge the user doesn't already hold. Returns the
// IDs of newly awarded badges in catalog order.
func (s *BadgeService) Evaluate(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := badge.Snapshot{
		Contributions: user.Contributions,
		Reputation:    user.Reputation,
	}

	var awarded []string

	for _, def := range badge.Catalog() {
		if user.HasBadge(def.ID) || !def.Eligible(snap) {
			continue
		}

		if err := s.users.AddBadge(ctx, userID, def.ID); err != nil {
			return awarded, err
		}

		awarded = append(awarded, def.ID)

		s.logger.Info("Awarded badge",
			zap.String("userID", userID),
			zap.String("badge", def.ID))

		s.notifyAward(ctx, userID, def)
	}

	return awarded, nil
}

// Progress reports the user's progress toward every badge in the catalog.
// Held badges report 100 regardless of current counters.
func (s *BadgeService) Progress(ctx context.Context, userID string) ([]types.BadgeProgress, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := badge.Snapshot{
		Contributions: user.Contributions,
		Reputation:    user.Reputation,
	}

	catalog := badge.Catalog()
	progress := make([]types.BadgeProgress, 0, len(catalog))

	for _, def := range catalog {
		entry := types.BadgeProgress{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Color:       def.Color,
			Earned:      user.HasBadge(def.ID),
			Percentage:  badge.Progress(snap, def),
		}

		if entry.Earned {
			entry.Percentage = 100
		}

		progress = append(progress, entry)
	}

	return progress, nil
}

// notifyAward emits a best-effort notification for a new badge.
func (s *BadgeService) notifyAward(ctx context.Context, userID string, def badge.Definition) {
	err := s.notifications.Insert(ctx, &types.Notification{
		UserID:      userID,
		Type:        enum.NotificationTypeBadgeEarned,
		Title:       "¡Nueva insignia desbloqueada!",
		Message:     "Has ganado la insignia \"" + def.Name + "\".",
		RelatedID:   def.ID,
		RelatedType: "badge",
	})
	if err != nil {
		s.logger.Warn("Failed to emit badge notification",
			zap.String("userID", userID),
			zap.String("badge", def.ID),
			zap.Error(err))
	}
}
