package service

import (
	"context"
	"strings"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"go.uber.org/zap"
)

// FlagService handles content reports and their moderation lifecycle.
type FlagService struct {
	flags       *models.FlagModel
	definitions *models.DefinitionModel
	comments    *models.CommentModel
	dichos      *models.DichoModel
	logger      *zap.Logger
}

// NewFlag creates a new flag service.
func NewFlag(
	flags *models.FlagModel,
	definitions *models.DefinitionModel,
	comments *models.CommentModel,
	dichos *models.DichoModel,
	logger *zap.Logger,
) *FlagService {
	return &FlagService{
		flags:       flags,
		definitions: definitions,
		comments:    comments,
		dichos:      dichos,
		logger:      logger.Named("flag_service"),
	}
}

// Report files a flag against a piece of content. Each reporter can hold at
// most one open flag per target.
func (s *FlagService) Report(
	ctx context.Context, reporterID string, targetType enum.TargetType, targetID string,
	reason enum.FlagReason, customReason string,
) (*types.Flag, error) {
	if strings.TrimSpace(reporterID) == "" {
		return nil, types.ErrUnauthenticated
	}

	if !targetType.IsATargetType() {
		return nil, types.ErrInvalidTargetType
	}

	if !reason.IsAFlagReason() {
		reason = enum.FlagReasonOther
	}

	if err := s.targetExists(ctx, targetType, targetID); err != nil {
		return nil, err
	}

	open, err := s.flags.HasOpenFlag(ctx, reporterID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	if open {
		return nil, types.ErrDuplicateFlag
	}

	flag := &types.Flag{
		ReporterID:   reporterID,
		TargetType:   targetType,
		TargetID:     targetID,
		Reason:       reason,
		CustomReason: strings.TrimSpace(customReason),
	}

	if err := s.flags.Insert(ctx, flag); err != nil {
		return nil, err
	}

	s.logger.Info("Filed content flag",
		zap.String("flagID", flag.ID),
		zap.String("targetType", targetType.String()),
		zap.String("targetID", targetID),
		zap.String("reason", reason.String()))

	return flag, nil
}

// Pending lists flags awaiting review, oldest first.
func (s *FlagService) Pending(ctx context.Context, limit int) ([]*types.Flag, error) {
	if limit <= 0 {
		limit = 50
	}

	return s.flags.GetByStatus(ctx, enum.FlagStatusPending, limit)
}

// Resolve transitions a flag's status and records the acting moderator.
// Content takedowns for resolved flags are a separate moderation action.
func (s *FlagService) Resolve(
	ctx context.Context, flagID, moderatorID string, status enum.FlagStatus, notes string,
) (*types.Flag, error) {
	if strings.TrimSpace(moderatorID) == "" {
		return nil, types.ErrUnauthenticated
	}

	if !status.IsAFlagStatus() || status == enum.FlagStatusPending {
		return nil, types.ErrInvalidFlagStatus
	}

	return s.flags.UpdateStatus(ctx, flagID, status, moderatorID, strings.TrimSpace(notes))
}

func (s *FlagService) targetExists(ctx context.Context, targetType enum.TargetType, targetID string) error {
	var err error

	switch targetType {
	case enum.TargetTypeDefinition:
		_, err = s.definitions.GetByID(ctx, targetID)
	case enum.TargetTypeComment:
		_, err = s.comments.GetByID(ctx, targetID)
	case enum.TargetTypeDicho:
		_, err = s.dichos.GetByID(ctx, targetID)
	default:
		return types.ErrInvalidTargetType
	}

	if err != nil {
		return types.ErrTargetNotFound
	}

	return nil
}
