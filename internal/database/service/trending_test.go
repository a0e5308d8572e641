package service_test

import (
	"testing"
	"time"

	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   enum.TrendingPeriod
		expected time.Time
	}{
		{
			name:     "day",
			period:   enum.TrendingPeriodDay,
			expected: time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "week",
			period:   enum.TrendingPeriodWeek,
			expected: time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "month",
			period:   enum.TrendingPeriodMonth,
			expected: time.Date(2026, time.July, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "all",
			period:   enum.TrendingPeriodAll,
			expected: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unknown falls back to week",
			period:   enum.TrendingPeriod(99),
			expected: time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, service.PeriodStart(tt.period, now))
		})
	}
}

func TestTrendingScore(t *testing.T) {
	t.Parallel()

	windowStart := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		activity *types.TermActivity
		expected float64
	}{
		{
			name: "definitions only",
			activity: &types.TermActivity{
				DefinitionCount: 3,
				LatestActivity:  windowStart,
			},
			expected: 6,
		},
		{
			name: "votes only",
			activity: &types.TermActivity{
				TotalVoteScore: 10,
				LatestActivity: windowStart,
			},
			expected: 5,
		},
		{
			name: "recency adds days since window start",
			activity: &types.TermActivity{
				DefinitionCount: 1,
				LatestActivity:  windowStart.AddDate(0, 0, 2),
			},
			expected: 2 + 2,
		},
		{
			name: "activity before window clamps to zero days",
			activity: &types.TermActivity{
				DefinitionCount: 1,
				LatestActivity:  windowStart.AddDate(0, 0, -5),
			},
			expected: 2,
		},
		{
			name: "negative vote score lowers the total",
			activity: &types.TermActivity{
				DefinitionCount: 2,
				TotalVoteScore:  -4,
				LatestActivity:  windowStart,
			},
			expected: 4 - 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, service.TrendingScore(tt.activity, windowStart), 1e-9)
		})
	}
}

func TestTrendingScoreOrdering(t *testing.T) {
	t.Parallel()

	windowStart := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

	// Fresh definition volume outranks raw vote totals at the configured
	// weights: 3 definitions beat 10 points of votes.
	busy := &types.TermActivity{DefinitionCount: 3, LatestActivity: windowStart}
	popular := &types.TermActivity{TotalVoteScore: 10, LatestActivity: windowStart}

	assert.Greater(t,
		service.TrendingScore(busy, windowStart),
		service.TrendingScore(popular, windowStart))

	// Identical aggregates with later activity rank strictly higher.
	early := &types.TermActivity{DefinitionCount: 1, LatestActivity: windowStart.Add(time.Hour)}
	late := &types.TermActivity{DefinitionCount: 1, LatestActivity: windowStart.Add(48 * time.Hour)}

	assert.Greater(t,
		service.TrendingScore(late, windowStart),
		service.TrendingScore(early, windowStart))
}

func TestRankTrendingTerms(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	entry := func(id string, score float64, activity time.Time) *types.TrendingTerm {
		return &types.TrendingTerm{
			Term:           &types.Term{ID: id},
			TrendingScore:  score,
			LatestActivity: activity,
		}
	}

	t.Run("higher score first regardless of activity", func(t *testing.T) {
		t.Parallel()

		ranked := []*types.TrendingTerm{
			entry("old-but-hot", 9, base.Add(-72*time.Hour)),
			entry("fresh-but-mild", 3, base),
		}

		service.RankTrendingTerms(ranked)

		assert.Equal(t, "old-but-hot", ranked[0].Term.ID)
		assert.Equal(t, "fresh-but-mild", ranked[1].Term.ID)
	})

	t.Run("equal scores break on latest activity descending", func(t *testing.T) {
		t.Parallel()

		ranked := []*types.TrendingTerm{
			entry("stale", 5, base.Add(-48*time.Hour)),
			entry("recent", 5, base),
			entry("middle", 5, base.Add(-24*time.Hour)),
		}

		service.RankTrendingTerms(ranked)

		assert.Equal(t, "recent", ranked[0].Term.ID)
		assert.Equal(t, "middle", ranked[1].Term.ID)
		assert.Equal(t, "stale", ranked[2].Term.ID)
	})

	t.Run("equal score and activity fall back to term ID", func(t *testing.T) {
		t.Parallel()

		ranked := []*types.TrendingTerm{
			entry("bravo", 5, base),
			entry("alfa", 5, base),
		}

		service.RankTrendingTerms(ranked)

		assert.Equal(t, "alfa", ranked[0].Term.ID)
		assert.Equal(t, "bravo", ranked[1].Term.ID)
	})
}
