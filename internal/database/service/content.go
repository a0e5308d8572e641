package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"go.uber.org/zap"
)

// ContentService handles definition, dicho and comment submission with the
// contribution side-effects each one carries.
type ContentService struct {
	terms         *models.TermModel
	definitions   *models.DefinitionModel
	dichos        *models.DichoModel
	comments      *models.CommentModel
	users         *models.UserModel
	notifications *models.NotificationModel
	reputation    *ReputationService
	badges        *BadgeService
	logger        *zap.Logger
}

// NewContent creates a new content service.
func NewContent(
	terms *models.TermModel,
	definitions *models.DefinitionModel,
	dichos *models.DichoModel,
	comments *models.CommentModel,
	users *models.UserModel,
	notifications *models.NotificationModel,
	reputation *ReputationService,
	badges *BadgeService,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		terms:         terms,
		definitions:   definitions,
		dichos:        dichos,
		comments:      comments,
		users:         users,
		notifications: notifications,
		reputation:    reputation,
		badges:        badges,
		logger:        logger.Named("content_service"),
	}
}

// CreateDefinition submits a definition for an existing term.
func (s *ContentService) CreateDefinition(
	ctx context.Context, userID, termID, content, example, audioURL, region string,
) (*types.Definition, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, types.ErrEmptyContent
	}

	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, err
	}

	if region == "" {
		region = term.Region
	}

	if !types.IsValidRegion(region) {
		return nil, types.ErrInvalidRegion
	}

	definition := &types.Definition{
		TermID:   term.ID,
		Content:  content,
		Example:  strings.TrimSpace(example),
		AudioURL: audioURL,
		AuthorID: userID,
		Region:   region,
	}

	if err := s.definitions.Insert(ctx, definition); err != nil {
		return nil, err
	}

	if err := s.users.IncrementContribution(ctx, userID, enum.ContributionKindDefinitions, 1); err != nil {
		return nil, err
	}

	s.refreshStanding(ctx, userID)

	if term.AuthorID != userID {
		s.notify(ctx, term.AuthorID, enum.NotificationTypeDefinitionApproved,
			"Nueva definición para tu término",
			"Alguien agregó una definición a \""+term.Word+"\".",
			definition.ID, "definition")
	}

	return definition, nil
}

// CreateDicho submits a regional saying for an existing term.
func (s *ContentService) CreateDicho(
	ctx context.Context, userID, termID, content, translation, region string,
) (*types.Dicho, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, types.ErrEmptyContent
	}

	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, err
	}

	if region == "" {
		region = term.Region
	}

	if !types.IsValidRegion(region) {
		return nil, types.ErrInvalidRegion
	}

	dicho := &types.Dicho{
		TermID:      term.ID,
		Content:     content,
		Translation: strings.TrimSpace(translation),
		AuthorID:    userID,
		Region:      region,
	}

	if err := s.dichos.Insert(ctx, dicho); err != nil {
		return nil, err
	}

	if err := s.users.IncrementContribution(ctx, userID, enum.ContributionKindDichos, 1); err != nil {
		return nil, err
	}

	s.refreshStanding(ctx, userID)

	return dicho, nil
}

// CreateComment posts a comment on a definition. ParentID, when set, must
// name an existing comment on the same definition.
func (s *ContentService) CreateComment(
	ctx context.Context, userID, definitionID, content, parentID string,
) (*types.Comment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, types.ErrEmptyContent
	}

	definition, err := s.definitions.GetByID(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	comment := &types.Comment{
		DefinitionID: definition.ID,
		UserID:       userID,
		Content:      content,
	}

	notifyUserID := definition.AuthorID

	if parentID != "" {
		parent, err := s.comments.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}

		if parent.DefinitionID != definition.ID {
			return nil, types.ErrCommentNotFound
		}

		comment.ParentID = sql.NullString{String: parent.ID, Valid: true}
		notifyUserID = parent.UserID
	}

	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.users.IncrementContribution(ctx, userID, enum.ContributionKindComments, 1); err != nil {
		return nil, err
	}

	s.refreshStanding(ctx, userID)

	if notifyUserID != userID {
		s.notify(ctx, notifyUserID, enum.NotificationTypeComment,
			"Nuevo comentario",
			"Alguien respondió a tu contribución.",
			comment.ID, "comment")
	}

	return comment, nil
}

// GetComments loads comments on a definition: top-level threads when
// parentID is empty, otherwise the replies under one comment.
func (s *ContentService) GetComments(
	ctx context.Context, definitionID, parentID string,
) ([]*types.Comment, error) {
	return s.comments.GetByDefinitionID(ctx, definitionID, parentID)
}

func (s *ContentService) refreshStanding(ctx context.Context, userID string) {
	if _, err := s.reputation.Recompute(ctx, userID); err != nil {
		s.logger.Warn("Failed to recompute reputation after contribution",
			zap.String("userID", userID),
			zap.Error(err))

		return
	}

	if _, err := s.badges.Evaluate(ctx, userID); err != nil {
		s.logger.Warn("Failed to evaluate badges after contribution",
			zap.String("userID", userID),
			zap.Error(err))
	}
}

func (s *ContentService) notify(
	ctx context.Context, userID string, notifType enum.NotificationType,
	title, message, relatedID, relatedType string,
) {
	err := s.notifications.Insert(ctx, &types.Notification{
		UserID:      userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		RelatedID:   relatedID,
		RelatedType: relatedType,
	})
	if err != nil {
		s.logger.Warn("Failed to emit notification",
			zap.String("userID", userID),
			zap.Error(err))
	}
}
