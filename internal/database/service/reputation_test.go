package service_test

import (
	"testing"

	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeReputation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counters types.ContributionCounters
		expected int64
	}{
		{
			name:     "zero counters",
			counters: types.ContributionCounters{},
			expected: 0,
		},
		{
			name:     "single term",
			counters: types.ContributionCounters{TermsSubmitted: 1},
			expected: 10,
		},
		{
			name:     "single definition",
			counters: types.ContributionCounters{DefinitionsSubmitted: 1},
			expected: 8,
		},
		{
			name:     "single vote",
			counters: types.ContributionCounters{VotesGiven: 1},
			expected: 1,
		},
		{
			name:     "single comment",
			counters: types.ContributionCounters{CommentsPosted: 1},
			expected: 2,
		},
		{
			name:     "single dicho",
			counters: types.ContributionCounters{DichosSubmitted: 1},
			expected: 5,
		},
		{
			name: "mixed contributions",
			counters: types.ContributionCounters{
				TermsSubmitted:       3,
				DefinitionsSubmitted: 2,
				VotesGiven:           10,
				CommentsPosted:       4,
				DichosSubmitted:      1,
			},
			expected: 3*10 + 2*8 + 10*1 + 4*2 + 1*5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, service.ComputeReputation(tt.counters))
		})
	}
}

func TestComputeReputationDeterministic(t *testing.T) {
	t.Parallel()

	counters := types.ContributionCounters{
		TermsSubmitted:       7,
		DefinitionsSubmitted: 13,
		VotesGiven:           42,
		CommentsPosted:       5,
		DichosSubmitted:      3,
	}

	first := service.ComputeReputation(counters)
	for range 10 {
		assert.Equal(t, first, service.ComputeReputation(counters))
	}
}
