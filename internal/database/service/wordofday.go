package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/redis/rueidis"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// WordOfDayCachePrefix namespaces word-of-day cache keys in Redis.
const WordOfDayCachePrefix = "wordofday:"

// DateSeed derives the deterministic daily seed from a calendar date.
// Every caller on the same UTC day computes the same seed, so the selection
// needs no stored state.
func DateSeed(date time.Time) int64 {
	year, month, day := date.UTC().Date()
	return int64(year)*10000 + int64(month)*100 + int64(day)
}

// SelectionOrdinal maps a daily seed onto a position in the stable
// enumeration of eligible terms. Consecutive seeds walk consecutive
// positions, so across eligible-many consecutive days every term gets
// its turn.
func SelectionOrdinal(seed, eligible int64) int64 {
	return seed % eligible
}

// WordOfDayService deterministically selects one eligible term per day and
// assembles its best definition and vote statistics.
type WordOfDayService struct {
	terms       *models.TermModel
	definitions *models.DefinitionModel
	cache       rueidis.Client
	cacheTTL    time.Duration
	clock       func() time.Time
	logger      *zap.Logger
}

// NewWordOfDay creates a new word-of-day service. The cache client may be
// nil, in which case every request recomputes the selection.
func NewWordOfDay(
	terms *models.TermModel,
	definitions *models.DefinitionModel,
	cache rueidis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *WordOfDayService {
	return &WordOfDayService{
		terms:       terms,
		definitions: definitions,
		cache:       cache,
		cacheTTL:    cacheTTL,
		clock:       time.Now,
		logger:      logger.Named("wordofday_service"),
	}
}

// Today returns the selection for the current UTC day.
func (s *WordOfDayService) Today(ctx context.Context, region string) (*types.WordOfDay, error) {
	return s.SelectForDate(ctx, s.clock(), region)
}

// SelectForDate picks the word of the day for an arbitrary date. A term is
// eligible when it is active and has at least one active definition; the
// seed selects the (seed mod eligibleCount)-th term in stable creation
// order, so the pick only changes when the eligible set itself changes.
func (s *WordOfDayService) SelectForDate(
	ctx context.Context, date time.Time, region string,
) (*types.WordOfDay, error) {
	dateKey := date.UTC().Format(time.DateOnly)
	cacheKey := fmt.Sprintf("%s%s:%s", WordOfDayCachePrefix, dateKey, region)

	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	eligible, err := s.terms.CountEligible(ctx, region)
	if err != nil {
		return nil, err
	}

	if eligible == 0 {
		return nil, types.ErrNoEligibleTerms
	}

	seed := DateSeed(date)
	ordinal := SelectionOrdinal(seed, eligible)

	term, err := s.terms.GetEligibleByOrdinal(ctx, region, ordinal)
	if err != nil {
		return nil, err
	}

	result := &types.WordOfDay{
		Date: dateKey,
		Seed: seed,
		Term: term,
	}

	// Fetch the showcase definition and the vote aggregates in parallel.
	p := pool.New().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		definition, err := s.definitions.GetBestForTerm(ctx, term.ID)
		if err != nil {
			if errors.Is(err, types.ErrDefinitionNotFound) {
				return nil
			}

			return err
		}

		result.Definition = definition

		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := s.definitions.CountForTerm(ctx, term.ID)
		if err != nil {
			return err
		}

		up, down, err := s.definitions.SumVotesForTerm(ctx, term.ID)
		if err != nil {
			return err
		}

		result.Stats = types.WordOfDayStats{
			DefinitionCount: count,
			TotalVotesUp:    up,
			TotalVotesDown:  down,
			Score:           up - down,
		}

		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble word of the day: %w", err)
	}

	s.writeCache(ctx, cacheKey, result)

	return result, nil
}

func (s *WordOfDayService) readCache(ctx context.Context, key string) *types.WordOfDay {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Do(ctx, s.cache.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			s.logger.Warn("Failed to read word of day cache",
				zap.String("key", key),
				zap.Error(err))
		}

		return nil
	}

	var cached types.WordOfDay
	if err := sonic.Unmarshal(data, &cached); err != nil {
		s.logger.Warn("Failed to decode word of day cache",
			zap.String("key", key),
			zap.Error(err))

		return nil
	}

	return &cached
}

func (s *WordOfDayService) writeCache(ctx context.Context, key string, value *types.WordOfDay) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := sonic.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode word of day cache",
			zap.String("key", key),
			zap.Error(err))

		return
	}

	err = s.cache.Do(ctx,
		s.cache.B().Set().Key(key).Value(string(data)).Ex(s.cacheTTL).Build(),
	).Error()
	if err != nil {
		s.logger.Warn("Failed to write word of day cache",
			zap.String("key", key),
			zap.Error(err))
	}
}
