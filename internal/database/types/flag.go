package types

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrFlagNotFound      = errors.New("flag not found")
	ErrDuplicateFlag     = errors.New("target already reported by this user")
	ErrInvalidFlagStatus = errors.New("invalid flag status transition")
)

// Flag is a user report against a piece of content, reviewed by moderators.
type Flag struct {
	bun.BaseModel `bun:"table:flags"`

	ID             string          `bun:"id,pk"              json:"id"`
	ReporterID     string          `bun:"reporter_id,notnull" json:"reporterId"`
	TargetType     enum.TargetType `bun:"target_type,notnull" json:"targetType"`
	TargetID       string          `bun:"target_id,notnull"  json:"targetId"`
	Reason         enum.FlagReason `bun:"reason,notnull"     json:"reason"`
	CustomReason   string          `bun:"custom_reason"      json:"customReason,omitempty"`
	Status         enum.FlagStatus `bun:"status,notnull"     json:"status"`
	ModeratorID    string          `bun:"moderator_id"       json:"moderatorId,omitempty"`
	ModeratorNotes string          `bun:"moderator_notes"    json:"moderatorNotes,omitempty"`
	ReviewedAt     sql.NullTime    `bun:"reviewed_at"        json:"reviewedAt,omitempty"`
	CreatedAt      time.Time       `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt      time.Time       `bun:"updated_at,notnull" json:"updatedAt"`
}
