package service

import (
	"context"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"go.uber.org/zap"
)

// Reputation weights per contribution kind.
const (
	ReputationWeightTerm       = 10
	ReputationWeightDefinition = 8
	ReputationWeightVote       = 1
	ReputationWeightComment    = 2
	ReputationWeightDicho      = 5
)

// ComputeReputation derives a user's reputation from their contribution
// counters. The score is fully determined by the counters, so recomputing
// after any counter change keeps it consistent.
func ComputeReputation(c types.ContributionCounters) int64 {
	return ReputationWeightTerm*c.TermsSubmitted +
		ReputationWeightDefinition*c.DefinitionsSubmitted +
		ReputationWeightVote*c.VotesGiven +
		ReputationWeightComment*c.CommentsPosted +
		ReputationWeightDicho*c.DichosSubmitted
}

// ReputationService recomputes and persists user reputation scores.
type ReputationService struct {
	users  *models.UserModel
	logger *zap.Logger
}

// NewReputation creates a new reputation service.
func NewReputation(users *models.UserModel, logger *zap.Logger) *ReputationService {
	return &ReputationService{
		users:  users,
		logger: logger.Named("reputation_service"),
	}
}

// Recompute loads the user's current counters, derives the reputation score
// and persists it. Returns the new score.
func (s *ReputationService) Recompute(ctx context.Context, userID string) (int64, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	score := ComputeReputation(user.Contributions)
	if score == user.Reputation {
		return score, nil
	}

	if err := s.users.UpdateReputation(ctx, userID, score); err != nil {
		return 0, err
	}

	s.logger.Debug("Updated user reputation",
		zap.String("userID", userID),
		zap.Int64("previous", user.Reputation),
		zap.Int64("current", score))

	return score, nil
}
