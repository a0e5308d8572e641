package service

import (
	"context"
	"strings"

	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/jergadic/jergadic/pkg/utils"
	"go.uber.org/zap"
)

// TermDetail bundles a term with its definitions and dichos for the detail
// view.
type TermDetail struct {
	Term        *types.Term         `json:"term"`
	Definitions []*types.Definition `json:"definitions"`
	Dichos      []*types.Dicho      `json:"dichos"`
}

// TermService handles term submission, lookup and search.
type TermService struct {
	terms       *models.TermModel
	definitions *models.DefinitionModel
	dichos      *models.DichoModel
	users       *models.UserModel
	reputation  *ReputationService
	badges      *BadgeService
	logger      *zap.Logger
}

// NewTerm creates a new term service.
func NewTerm(
	terms *models.TermModel,
	definitions *models.DefinitionModel,
	dichos *models.DichoModel,
	users *models.UserModel,
	reputation *ReputationService,
	badges *BadgeService,
	logger *zap.Logger,
) *TermService {
	return &TermService{
		terms:       terms,
		definitions: definitions,
		dichos:      dichos,
		users:       users,
		reputation:  reputation,
		badges:      badges,
		logger:      logger.Named("term_service"),
	}
}

// CreateTerm submits a new term. Words are stored lowercase and must be
// unique per region.
func (s *TermService) CreateTerm(
	ctx context.Context, userID, word, region string, tags, synonyms []string,
) (*types.Term, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, types.ErrUnauthenticated
	}

	word = utils.NormalizeWord(word)
	if word == "" {
		return nil, types.ErrEmptyContent
	}

	if region == "" {
		region = types.RegionGeneral
	}

	if !types.IsValidRegion(region) {
		return nil, types.ErrInvalidRegion
	}

	exists, err := s.terms.Exists(ctx, word, region)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, types.ErrDuplicateTerm
	}

	term := &types.Term{
		Word:     word,
		Region:   region,
		Tags:     tags,
		Synonyms: synonyms,
		AuthorID: userID,
	}

	if err := s.terms.Insert(ctx, term); err != nil {
		return nil, err
	}

	if err := s.users.IncrementContribution(ctx, userID, enum.ContributionKindTerms, 1); err != nil {
		return nil, err
	}

	s.refreshStanding(ctx, userID)

	s.logger.Info("Created term",
		zap.String("termID", term.ID),
		zap.String("word", word),
		zap.String("region", region))

	return term, nil
}

// GetTermDetail loads a term with its definitions and dichos.
func (s *TermService) GetTermDetail(ctx context.Context, termID, region string) (*TermDetail, error) {
	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, err
	}

	definitions, err := s.definitions.GetByTermID(ctx, termID, region)
	if err != nil {
		return nil, err
	}

	dichos, err := s.dichos.GetByTermID(ctx, termID, region)
	if err != nil {
		return nil, err
	}

	return &TermDetail{
		Term:        term,
		Definitions: definitions,
		Dichos:      dichos,
	}, nil
}

// GetByWord finds a term by word within a region. Matching ignores case
// and accents.
func (s *TermService) GetByWord(ctx context.Context, word, region string) (*types.Term, error) {
	return s.terms.GetByWord(ctx, word, region)
}

// Search finds terms matching the query against words, tags and synonyms.
func (s *TermService) Search(ctx context.Context, query, region string, limit int) ([]*types.Term, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*types.Term{}, nil
	}

	if limit <= 0 {
		limit = 20
	}

	return s.terms.Search(ctx, query, region, limit)
}

// Autocomplete suggests terms whose word starts with the given prefix.
func (s *TermService) Autocomplete(ctx context.Context, prefix, region string, limit int) ([]*types.Term, error) {
	prefix = utils.NormalizeQuery(prefix)
	if prefix == "" {
		return []*types.Term{}, nil
	}

	if limit <= 0 {
		limit = 10
	}

	return s.terms.Autocomplete(ctx, prefix, region, limit)
}

// List returns active terms newest first for browsing, with offset
// pagination.
func (s *TermService) List(ctx context.Context, region string, limit, offset int) ([]*types.Term, error) {
	if limit <= 0 {
		limit = 20
	}

	if offset < 0 {
		offset = 0
	}

	return s.terms.ListRecent(ctx, region, limit, offset)
}

// Random returns a random active term, optionally filtered by region.
func (s *TermService) Random(ctx context.Context, region string) (*types.Term, error) {
	return s.terms.GetRandom(ctx, region)
}

// Deactivate soft-deletes a term so it stops appearing in lookups and
// rankings.
func (s *TermService) Deactivate(ctx context.Context, termID string) error {
	return s.terms.Deactivate(ctx, termID)
}

func (s *TermService) refreshStanding(ctx context.Context, userID string) {
	if _, err := s.reputation.Recompute(ctx, userID); err != nil {
		s.logger.Warn("Failed to recompute reputation after term submission",
			zap.String("userID", userID),
			zap.Error(err))

		return
	}

	if _, err := s.badges.Evaluate(ctx, userID); err != nil {
		s.logger.Warn("Failed to evaluate badges after term submission",
			zap.String("userID", userID),
			zap.Error(err))
	}
}
