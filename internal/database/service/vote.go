package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jergadic/jergadic/internal/database/dbretry"
	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"go.uber.org/zap"
)

// ResolveTransition computes the counter delta and resulting polarity for
// a vote request against the existing vote state (nil when the user has no
// vote on the target).
//
//   - no existing vote: create, +1 on the requested polarity
//   - same polarity: retraction, -1 on that polarity, resulting nil
//   - different polarity: flip, -1 old and +1 new
func ResolveTransition(existing *enum.Polarity, requested enum.Polarity) (types.VoteDelta, *enum.Polarity) {
	var delta types.VoteDelta

	switch {
	case existing == nil:
		delta = polarityDelta(requested, 1)
		return delta, &requested

	case *existing == requested:
		delta = polarityDelta(requested, -1)
		return delta, nil

	default:
		delta = polarityDelta(*existing, -1)
		add := polarityDelta(requested, 1)
		delta.Up += add.Up
		delta.Down += add.Down

		return delta, &requested
	}
}

func polarityDelta(p enum.Polarity, amount int64) types.VoteDelta {
	if p == enum.PolarityUp {
		return types.VoteDelta{Up: amount}
	}

	return types.VoteDelta{Down: amount}
}

// VoteService handles the vote pipeline: ledger transition, counter
// aggregation, contribution tracking and best-effort reputation, badge and
// notification follow-ups.
type VoteService struct {
	votes         *models.VoteModel
	definitions   *models.DefinitionModel
	comments      *models.CommentModel
	dichos        *models.DichoModel
	users         *models.UserModel
	notifications *models.NotificationModel
	reputation    *ReputationService
	badges        *BadgeService
	logger        *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(
	votes *models.VoteModel,
	definitions *models.DefinitionModel,
	comments *models.CommentModel,
	dichos *models.DichoModel,
	users *models.UserModel,
	notifications *models.NotificationModel,
	reputation *ReputationService,
	badges *BadgeService,
	logger *zap.Logger,
) *VoteService {
	return &VoteService{
		votes:         votes,
		definitions:   definitions,
		comments:      comments,
		dichos:        dichos,
		users:         users,
		notifications: notifications,
		reputation:    reputation,
		badges:        badges,
		logger:        logger.Named("vote_service"),
	}
}

// CastVote applies one vote request. The ledger transition and counter
// update are synchronous and surfaced to the caller; reputation, badge and
// notification follow-ups are best-effort and only logged on failure.
func (s *VoteService) CastVote(
	ctx context.Context, userID string, targetType enum.TargetType, targetID string, polarity enum.Polarity,
) (*types.VoteResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	if !polarity.IsAPolarity() {
		return nil, types.ErrInvalidPolarity
	}

	if !targetType.IsATargetType() {
		return nil, types.ErrInvalidTargetType
	}

	// Verify the target exists before touching the ledger.
	authorID, err := s.resolveTargetAuthor(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	existing, err := s.votes.GetUserVote(ctx, userID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	var existingPolarity *enum.Polarity
	if existing != nil {
		existingPolarity = &existing.Polarity
	}

	delta, resulting := ResolveTransition(existingPolarity, polarity)

	// Persist the ledger state: upsert for create/flip, delete for
	// retraction. The unique (user, target) key makes concurrent requests
	// from the same user converge on a single row. Both writes are
	// idempotent, so they retry safely on transient failures.
	err = dbretry.NoResult(ctx, func(ctx context.Context) error {
		if resulting == nil {
			return s.votes.Delete(ctx, userID, targetType, targetID)
		}

		return s.votes.Upsert(ctx, &types.Vote{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
			Polarity:   *resulting,
		})
	})
	if err != nil {
		return nil, err
	}

	counters, err := s.applyDelta(ctx, targetType, targetID, delta)
	if err != nil {
		return nil, err
	}

	if !delta.IsZero() {
		if err := s.users.IncrementContribution(ctx, userID, enum.ContributionKindVotes, 1); err != nil {
			return nil, fmt.Errorf("failed to record vote contribution: %w", err)
		}

		s.refreshStanding(ctx, userID)
	}

	// Notify the author on a fresh positive vote. Self-votes and failures
	// are ignored.
	if delta.Up > 0 && authorID != userID {
		s.notifyAuthor(ctx, authorID, targetType, targetID)
	}

	return &types.VoteResult{
		Polarity: resulting,
		Delta:    delta,
		Counters: *counters,
	}, nil
}

// GetUserVote returns the user's current polarity on a target, or nil when
// no vote exists.
func (s *VoteService) GetUserVote(
	ctx context.Context, userID string, targetType enum.TargetType, targetID string,
) (*enum.Polarity, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	vote, err := s.votes.GetUserVote(ctx, userID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	if vote == nil {
		return nil, nil
	}

	return &vote.Polarity, nil
}

// resolveTargetAuthor checks that the target exists and returns its author.
func (s *VoteService) resolveTargetAuthor(
	ctx context.Context, targetType enum.TargetType, targetID string,
) (string, error) {
	switch targetType {
	case enum.TargetTypeDefinition:
		definition, err := s.definitions.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, types.ErrDefinitionNotFound) {
				return "", types.ErrTargetNotFound
			}

			return "", err
		}

		return definition.AuthorID, nil

	case enum.TargetTypeComment:
		comment, err := s.comments.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, types.ErrCommentNotFound) {
				return "", types.ErrTargetNotFound
			}

			return "", err
		}

		return comment.UserID, nil

	case enum.TargetTypeDicho:
		dicho, err := s.dichos.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, types.ErrDichoNotFound) {
				return "", types.ErrTargetNotFound
			}

			return "", err
		}

		return dicho.AuthorID, nil

	default:
		return "", types.ErrInvalidTargetType
	}
}

// applyDelta routes the counter update to the target's model.
func (s *VoteService) applyDelta(
	ctx context.Context, targetType enum.TargetType, targetID string, delta types.VoteDelta,
) (*types.VoteCounters, error) {
	var (
		counters *types.VoteCounters
		err      error
	)

	switch targetType {
	case enum.TargetTypeDefinition:
		counters, err = s.definitions.UpdateVoteCounters(ctx, targetID, delta.Up, delta.Down)
	case enum.TargetTypeComment:
		counters, err = s.comments.UpdateVoteCounters(ctx, targetID, delta.Up, delta.Down)
	case enum.TargetTypeDicho:
		counters, err = s.dichos.UpdateVoteCounters(ctx, targetID, delta.Up, delta.Down)
	default:
		return nil, types.ErrInvalidTargetType
	}

	if err != nil {
		return nil, err
	}

	// The clamp in the update statement means score always equals the
	// stored counters; a mismatch with the raw delta arithmetic indicates
	// a ledger bug.
	if counters.Score != counters.Up-counters.Down {
		s.logger.Warn("Vote counter clamp triggered",
			zap.String("targetID", targetID),
			zap.Int64("up", counters.Up),
			zap.Int64("down", counters.Down),
			zap.Int64("score", counters.Score))
	}

	return counters, nil
}

// refreshStanding recomputes reputation and evaluates badges for the user.
// Failures here never abort the vote that triggered them.
func (s *VoteService) refreshStanding(ctx context.Context, userID string) {
	if _, err := s.reputation.Recompute(ctx, userID); err != nil {
		s.logger.Warn("Failed to recompute reputation after vote",
			zap.String("userID", userID),
			zap.Error(err))

		return
	}

	if _, err := s.badges.Evaluate(ctx, userID); err != nil {
		s.logger.Warn("Failed to evaluate badges after vote",
			zap.String("userID", userID),
			zap.Error(err))
	}
}

// notifyAuthor emits a best-effort notification for a positive vote.
func (s *VoteService) notifyAuthor(ctx context.Context, authorID string, targetType enum.TargetType, targetID string) {
	err := s.notifications.Insert(ctx, &types.Notification{
		UserID:      authorID,
		Type:        enum.NotificationTypeVote,
		Title:       "¡Tu contribución recibió un voto positivo!",
		Message:     "Alguien valoró positivamente tu " + targetType.String() + ".",
		RelatedID:   targetID,
		RelatedType: targetType.String(),
	})
	if err != nil {
		s.logger.Warn("Failed to emit vote notification",
			zap.String("authorID", authorID),
			zap.String("targetID", targetID),
			zap.Error(err))
	}
}
