package service_test

import (
	"testing"
	"time"

	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/stretchr/testify/assert"
)

func TestDateSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		date     time.Time
		expected int64
	}{
		{
			name:     "regular date",
			date:     time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			expected: 20260831,
		},
		{
			name:     "single digit month and day",
			date:     time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			expected: 20250102,
		},
		{
			name:     "end of year",
			date:     time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: 20241231,
		},
		{
			name:     "time of day is ignored",
			date:     time.Date(2026, time.August, 31, 18, 45, 12, 0, time.UTC),
			expected: 20260831,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, service.DateSeed(tt.date))
		})
	}
}

func TestDateSeedNormalizesToUTC(t *testing.T) {
	t.Parallel()

	// Late evening in a western timezone is already the next day in UTC, so
	// both representations of the same instant must agree on the seed.
	lima := time.FixedZone("America/Lima", -5*3600)
	local := time.Date(2026, time.August, 30, 22, 0, 0, 0, lima)

	assert.Equal(t, int64(20260831), service.DateSeed(local))
	assert.Equal(t, service.DateSeed(local.UTC()), service.DateSeed(local))
}

func TestDateSeedChangesDaily(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)
	seen := make(map[int64]struct{})

	// Consecutive days never repeat a seed, including across month
	// boundaries (2026-02-28 -> 2026-03-01).
	for range 10 {
		seed := service.DateSeed(day)
		_, dup := seen[seed]
		assert.False(t, dup, "duplicate seed %d for %s", seed, day.Format(time.DateOnly))

		seen[seed] = struct{}{}
		day = day.AddDate(0, 0, 1)
	}
}

func TestSelectionOrdinalCoversAllPositions(t *testing.T) {
	t.Parallel()

	// Seeds on consecutive days within a month are consecutive integers, so
	// a run of eligible-many days must visit every position exactly once.
	const eligible = 7

	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	visited := make(map[int64]int)

	for range eligible {
		ordinal := service.SelectionOrdinal(service.DateSeed(day), eligible)

		assert.GreaterOrEqual(t, ordinal, int64(0))
		assert.Less(t, ordinal, int64(eligible))

		visited[ordinal]++
		day = day.AddDate(0, 0, 1)
	}

	assert.Len(t, visited, eligible)

	for ordinal, count := range visited {
		assert.Equal(t, 1, count, "position %d visited %d times", ordinal, count)
	}
}

func TestSelectionOrdinalSingleTerm(t *testing.T) {
	t.Parallel()

	// With exactly one eligible term, every day picks that term.
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for range 30 {
		assert.Equal(t, int64(0), service.SelectionOrdinal(service.DateSeed(day), 1))

		day = day.AddDate(0, 0, 1)
	}
}

func TestSelectionOrdinalStablePerDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 15, 22, 30, 0, 0, time.UTC)

	assert.Equal(t,
		service.SelectionOrdinal(service.DateSeed(morning), 13),
		service.SelectionOrdinal(service.DateSeed(evening), 13))
}
