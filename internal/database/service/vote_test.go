package service_test

import (
	"testing"

	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polarityPtr(p enum.Polarity) *enum.Polarity {
	return &p
}

func TestResolveTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		existing      *enum.Polarity
		requested     enum.Polarity
		wantDelta     types.VoteDelta
		wantResulting *enum.Polarity
	}{
		{
			name:          "create upvote",
			existing:      nil,
			requested:     enum.PolarityUp,
			wantDelta:     types.VoteDelta{Up: 1},
			wantResulting: polarityPtr(enum.PolarityUp),
		},
		{
			name:          "create downvote",
			existing:      nil,
			requested:     enum.PolarityDown,
			wantDelta:     types.VoteDelta{Down: 1},
			wantResulting: polarityPtr(enum.PolarityDown),
		},
		{
			name:          "retract upvote",
			existing:      polarityPtr(enum.PolarityUp),
			requested:     enum.PolarityUp,
			wantDelta:     types.VoteDelta{Up: -1},
			wantResulting: nil,
		},
		{
			name:          "retract downvote",
			existing:      polarityPtr(enum.PolarityDown),
			requested:     enum.PolarityDown,
			wantDelta:     types.VoteDelta{Down: -1},
			wantResulting: nil,
		},
		{
			name:          "flip up to down",
			existing:      polarityPtr(enum.PolarityUp),
			requested:     enum.PolarityDown,
			wantDelta:     types.VoteDelta{Up: -1, Down: 1},
			wantResulting: polarityPtr(enum.PolarityDown),
		},
		{
			name:          "flip down to up",
			existing:      polarityPtr(enum.PolarityDown),
			requested:     enum.PolarityUp,
			wantDelta:     types.VoteDelta{Up: 1, Down: -1},
			wantResulting: polarityPtr(enum.PolarityUp),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			delta, resulting := service.ResolveTransition(tt.existing, tt.requested)
			assert.Equal(t, tt.wantDelta, delta)

			if tt.wantResulting == nil {
				assert.Nil(t, resulting)
			} else {
				require.NotNil(t, resulting)
				assert.Equal(t, *tt.wantResulting, *resulting)
			}
		})
	}
}

func TestResolveTransitionRoundTrip(t *testing.T) {
	t.Parallel()

	// Casting the same polarity twice must cancel out on the counters.
	first, resulting := service.ResolveTransition(nil, enum.PolarityUp)
	require.NotNil(t, resulting)

	second, retracted := service.ResolveTransition(resulting, enum.PolarityUp)
	assert.Nil(t, retracted)
	assert.Equal(t, int64(0), first.Up+second.Up)
	assert.Equal(t, int64(0), first.Down+second.Down)
	assert.True(t, types.VoteDelta{Up: first.Up + second.Up, Down: first.Down + second.Down}.IsZero())
}
