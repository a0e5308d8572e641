package types

import (
	"errors"
	"time"

	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrTargetNotFound    = errors.New("vote target not found")
	ErrInvalidPolarity   = errors.New("invalid vote polarity")
	ErrInvalidTargetType = errors.New("invalid vote target type")
)

// Vote records a single user's vote on a target. The composite primary key
// enforces at most one vote per (user, target) pair; a repeated vote request
// mutates or removes this row instead of creating a second one.
type Vote struct {
	bun.BaseModel `bun:"table:votes"`

	UserID     string          `bun:"user_id,pk"         json:"userId"`
	TargetType enum.TargetType `bun:"target_type,pk"     json:"targetType"`
	TargetID   string          `bun:"target_id,pk"       json:"targetId"`
	Polarity   enum.Polarity   `bun:"polarity,notnull"   json:"polarity"`
	CreatedAt  time.Time       `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt  time.Time       `bun:"updated_at,notnull" json:"updatedAt"`
}

// VoteDelta is the signed counter adjustment produced by one vote
// transition. Each field is -1, 0 or +1.
type VoteDelta struct {
	Up   int64 `json:"up"`
	Down int64 `json:"down"`
}

// IsZero reports whether the transition was a no-op.
func (d VoteDelta) IsZero() bool {
	return d.Up == 0 && d.Down == 0
}

// VoteResult describes the outcome of a cast-vote call. Polarity is nil
// when the call retracted an existing vote.
type VoteResult struct {
	Polarity *enum.Polarity `json:"polarity"`
	Delta    VoteDelta      `json:"delta"`
	Counters VoteCounters   `json:"counters"`
}
