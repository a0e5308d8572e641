package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, rueidis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestTrendingTermsCacheHit(t *testing.T) {
	t.Parallel()

	mr, client := setupCache(t)
	ctx := t.Context()

	cached := []*types.TrendingTerm{
		{
			Term: &types.Term{
				ID:       "term-1",
				Word:     "chido",
				Region:   "Mexico",
				IsActive: true,
			},
			TrendingScore:   12.5,
			DefinitionCount: 4,
			TotalVoteScore:  9,
			LatestActivity:  time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC),
		},
	}

	data, err := sonic.Marshal(cached)
	require.NoError(t, err)

	key := fmt.Sprintf("%sterms:%s:%s:%d",
		service.TrendingCachePrefix, enum.TrendingPeriodWeek, "Mexico", 10)
	require.NoError(t, mr.Set(key, string(data)))

	// With the ranking cached, the service never touches the database, so
	// nil models are safe here.
	svc := service.NewTrending(nil, nil, client, time.Minute, 10, zap.NewNop())

	got, err := svc.TrendingTerms(ctx, enum.TrendingPeriodWeek, "Mexico", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "term-1", got[0].Term.ID)
	assert.Equal(t, "chido", got[0].Term.Word)
	assert.InDelta(t, 12.5, got[0].TrendingScore, 1e-9)
	assert.Equal(t, int64(4), got[0].DefinitionCount)
}

func TestTrendingDefinitionsCacheHit(t *testing.T) {
	t.Parallel()

	mr, client := setupCache(t)
	ctx := t.Context()

	cached := []*types.Definition{
		{
			ID:      "def-1",
			TermID:  "term-1",
			Content: "Algo muy bueno",
		},
	}

	data, err := sonic.Marshal(cached)
	require.NoError(t, err)

	key := fmt.Sprintf("%sdefinitions:%s:%s:%d",
		service.TrendingCachePrefix, enum.TrendingPeriodDay, "", 10)
	require.NoError(t, mr.Set(key, string(data)))

	svc := service.NewTrending(nil, nil, client, time.Minute, 10, zap.NewNop())

	got, err := svc.TrendingDefinitions(ctx, enum.TrendingPeriodDay, "", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "def-1", got[0].ID)
}

func TestWordOfDayCacheHit(t *testing.T) {
	t.Parallel()

	mr, client := setupCache(t)
	ctx := t.Context()

	date := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	cached := &types.WordOfDay{
		Date: "2026-08-31",
		Seed: 20260831,
		Term: &types.Term{
			ID:       "term-1",
			Word:     "bacano",
			Region:   "Colombia",
			IsActive: true,
		},
		Stats: types.WordOfDayStats{
			DefinitionCount: 2,
			TotalVotesUp:    7,
			TotalVotesDown:  1,
			Score:           6,
		},
	}

	data, err := sonic.Marshal(cached)
	require.NoError(t, err)

	key := fmt.Sprintf("%s%s:%s", service.WordOfDayCachePrefix, "2026-08-31", "Colombia")
	require.NoError(t, mr.Set(key, string(data)))

	svc := service.NewWordOfDay(nil, nil, client, time.Hour, zap.NewNop())

	got, err := svc.SelectForDate(ctx, date, "Colombia")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", got.Date)
	assert.Equal(t, int64(20260831), got.Seed)
	assert.Equal(t, "bacano", got.Term.Word)
	assert.Equal(t, int64(6), got.Stats.Score)
}

func TestWordOfDayCacheKeysAreRegionScoped(t *testing.T) {
	t.Parallel()

	mr, client := setupCache(t)
	ctx := t.Context()

	key := fmt.Sprintf("%s%s:%s", service.WordOfDayCachePrefix, "2026-01-01", "Chile")
	require.NoError(t, mr.Set(key, `{"date":"2026-01-01","seed":20260101,"term":{"id":"t","word":"weon"}}`))

	svc := service.NewWordOfDay(nil, nil, client, time.Hour, zap.NewNop())

	got, err := svc.SelectForDate(ctx, time.Date(2026, time.January, 1, 12, 30, 0, 0, time.UTC), "Chile")
	require.NoError(t, err)
	assert.Equal(t, int64(20260101), got.Seed)
	assert.Equal(t, "weon", got.Term.Word)
}
