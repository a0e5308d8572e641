package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Trending score weights. The composite favors fresh definition volume
// over raw vote totals, with a recency term measured in days inside the
// window.
const (
	TrendingWeightDefinitions = 2.0
	TrendingWeightVoteScore   = 0.5
)

// TrendingCachePrefix namespaces trending cache keys in Redis.
const TrendingCachePrefix = "trending:"

// allPeriodEpoch anchors the "all time" window. Content predates nothing
// before the platform existed, so a fixed epoch keeps the score stable.
var allPeriodEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// PeriodStart returns the window start for a trending period relative to
// now.
func PeriodStart(period enum.TrendingPeriod, now time.Time) time.Time {
	switch period {
	case enum.TrendingPeriodDay:
		return now.AddDate(0, 0, -1)
	case enum.TrendingPeriodWeek:
		return now.AddDate(0, 0, -7)
	case enum.TrendingPeriodMonth:
		return now.AddDate(0, -1, 0)
	case enum.TrendingPeriodAll:
		return allPeriodEpoch
	default:
		return now.AddDate(0, 0, -7)
	}
}

// TrendingScore computes the composite score for one term's window
// aggregates. The recency term counts days elapsed from the window start
// to the term's latest activity, so later activity inside the same window
// ranks higher.
func TrendingScore(activity *types.TermActivity, windowStart time.Time) float64 {
	days := activity.LatestActivity.Sub(windowStart).Hours() / 24
	if days < 0 {
		days = 0
	}

	return TrendingWeightDefinitions*float64(activity.DefinitionCount) +
		TrendingWeightVoteScore*float64(activity.TotalVoteScore) +
		days
}

// TrendingService ranks terms and definitions by windowed activity, with a
// short-lived Redis cache in front of the aggregate queries.
type TrendingService struct {
	definitions  *models.DefinitionModel
	terms        *models.TermModel
	cache        rueidis.Client
	cacheTTL     time.Duration
	defaultLimit int
	clock        func() time.Time
	logger       *zap.Logger
}

// NewTrending creates a new trending service. The cache client may be nil,
// in which case every request hits the database.
func NewTrending(
	definitions *models.DefinitionModel,
	terms *models.TermModel,
	cache rueidis.Client,
	cacheTTL time.Duration,
	defaultLimit int,
	logger *zap.Logger,
) *TrendingService {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}

	return &TrendingService{
		definitions:  definitions,
		terms:        terms,
		cache:        cache,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
		clock:        time.Now,
		logger:       logger.Named("trending_service"),
	}
}

// RankTrendingTerms sorts terms in place by trending score descending.
// Equal scores break on latest activity (most recent first), then term ID
// so the order is stable across runs.
func RankTrendingTerms(ranked []*types.TrendingTerm) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TrendingScore != ranked[j].TrendingScore {
			return ranked[i].TrendingScore > ranked[j].TrendingScore
		}

		if !ranked[i].LatestActivity.Equal(ranked[j].LatestActivity) {
			return ranked[i].LatestActivity.After(ranked[j].LatestActivity)
		}

		return ranked[i].Term.ID < ranked[j].Term.ID
	})
}

// TrendingTerms returns the top terms for a period, ranked by composite
// score. Ties break on latest activity, then term ID for a stable order.
func (s *TrendingService) TrendingTerms(
	ctx context.Context, period enum.TrendingPeriod, region string, limit int,
) ([]*types.TrendingTerm, error) {
	if !period.IsATrendingPeriod() {
		period = enum.TrendingPeriodWeek
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}

	cacheKey := fmt.Sprintf("%sterms:%s:%s:%d", TrendingCachePrefix, period, region, limit)

	var cached []*types.TrendingTerm
	if s.readCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	now := s.clock()
	windowStart := PeriodStart(period, now)

	activity, err := s.definitions.GetTermActivity(ctx, windowStart, region)
	if err != nil {
		return nil, err
	}

	if len(activity) == 0 {
		return []*types.TrendingTerm{}, nil
	}

	termIDs := make([]string, 0, len(activity))
	for _, a := range activity {
		termIDs = append(termIDs, a.TermID)
	}

	termsByID, err := s.terms.GetByIDs(ctx, termIDs)
	if err != nil {
		return nil, err
	}

	ranked := make([]*types.TrendingTerm, 0, len(activity))

	for _, a := range activity {
		term, ok := termsByID[a.TermID]
		if !ok || !term.IsActive {
			continue
		}

		ranked = append(ranked, &types.TrendingTerm{
			Term:            term,
			TrendingScore:   TrendingScore(a, windowStart),
			DefinitionCount: a.DefinitionCount,
			TotalVoteScore:  a.TotalVoteScore,
			LatestActivity:  a.LatestActivity,
		})
	}

	RankTrendingTerms(ranked)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.writeCache(ctx, cacheKey, ranked)

	return ranked, nil
}

// TrendingDefinitions returns the positively-scored definitions created
// inside the period's window, ranked by vote score then recency.
func (s *TrendingService) TrendingDefinitions(
	ctx context.Context, period enum.TrendingPeriod, region string, limit int,
) ([]*types.Definition, error) {
	if !period.IsATrendingPeriod() {
		period = enum.TrendingPeriodWeek
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}

	cacheKey := fmt.Sprintf("%sdefinitions:%s:%s:%d", TrendingCachePrefix, period, region, limit)

	var cached []*types.Definition
	if s.readCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	windowStart := PeriodStart(period, s.clock())

	definitions, err := s.definitions.GetTrending(ctx, windowStart, region, limit)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, cacheKey, definitions)

	return definitions, nil
}

// readCache loads a cached ranking into dest. Any cache failure is treated
// as a miss.
func (s *TrendingService) readCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Do(ctx, s.cache.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			s.logger.Warn("Failed to read trending cache",
				zap.String("key", key),
				zap.Error(err))
		}

		return false
	}

	if err := sonic.Unmarshal(data, dest); err != nil {
		s.logger.Warn("Failed to decode trending cache",
			zap.String("key", key),
			zap.Error(err))

		return false
	}

	return true
}

// writeCache stores a ranking with the configured TTL. Failures are logged
// and ignored.
func (s *TrendingService) writeCache(ctx context.Context, key string, value any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := sonic.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode trending cache",
			zap.String("key", key),
			zap.Error(err))

		return
	}

	err = s.cache.Do(ctx,
		s.cache.B().Set().Key(key).Value(string(data)).Ex(s.cacheTTL).Build(),
	).Error()
	if err != nil {
		s.logger.Warn("Failed to write trending cache",
			zap.String("key", key),
			zap.Error(err))
	}
}
