package badge_test

import (
	"testing"

	"github.com/jergadic/jergadic/internal/badge"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		badgeID  string
		snapshot badge.Snapshot
		expected bool
	}{
		{
			name:     "newbie below threshold",
			badgeID:  "newbie",
			snapshot: badge.Snapshot{},
			expected: false,
		},
		{
			name:    "newbie at threshold",
			badgeID: "newbie",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 1},
			},
			expected: true,
		},
		{
			name:    "contributor one short",
			badgeID: "contributor",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 9},
			},
			expected: false,
		},
		{
			name:    "contributor at threshold",
			badgeID: "contributor",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 10},
			},
			expected: true,
		},
		{
			name:    "active voter at threshold",
			badgeID: "active_voter",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{VotesGiven: 50},
			},
			expected: true,
		},
		{
			name:    "definition master above threshold",
			badgeID: "definition_master",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{DefinitionsSubmitted: 30},
			},
			expected: true,
		},
		{
			name:    "legend requires reputation not counters",
			badgeID: "legend",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 999},
			},
			expected: false,
		},
		{
			name:     "legend at reputation threshold",
			badgeID:  "legend",
			snapshot: badge.Snapshot{Reputation: 1000},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def, ok := badge.Lookup(tt.badgeID)
			require.True(t, ok, "badge %q not in catalog", tt.badgeID)

			assert.Equal(t, tt.expected, def.Eligible(tt.snapshot))
		})
	}
}

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()

	catalog := badge.Catalog()
	require.NotEmpty(t, catalog)

	seen := make(map[string]struct{}, len(catalog))
	for _, def := range catalog {
		assert.NotEmpty(t, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Criteria, "badge %q has no criteria", def.ID)

		_, dup := seen[def.ID]
		assert.False(t, dup, "duplicate badge id %q", def.ID)
		seen[def.ID] = struct{}{}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	def, ok := badge.Lookup("newbie")
	require.True(t, ok)
	assert.Equal(t, "Novato", def.Name)

	_, ok = badge.Lookup("missing")
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	contributor, ok := badge.Lookup("contributor")
	require.True(t, ok)

	tests := []struct {
		name     string
		snapshot badge.Snapshot
		expected float64
	}{
		{
			name:     "no progress",
			snapshot: badge.Snapshot{},
			expected: 0,
		},
		{
			name: "halfway",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 5},
			},
			expected: 50,
		},
		{
			name: "complete",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 10},
			},
			expected: 100,
		},
		{
			name: "overshoot clamps to 100",
			snapshot: badge.Snapshot{
				Contributions: types.ContributionCounters{TermsSubmitted: 40},
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, badge.Progress(tt.snapshot, contributor), 1e-9)
		})
	}
}

func TestProgressMonotonic(t *testing.T) {
	t.Parallel()

	voter, ok := badge.Lookup("active_voter")
	require.True(t, ok)

	previous := float64(-1)
	for votes := int64(0); votes <= 60; votes += 5 {
		snap := badge.Snapshot{
			Contributions: types.ContributionCounters{VotesGiven: votes},
		}

		pct := badge.Progress(snap, voter)
		assert.GreaterOrEqual(t, pct, previous)
		previous = pct
	}
}
