package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var ErrDichoNotFound = errors.New("dicho not found")

// Dicho is a regional saying or proverb associated with a term.
type Dicho struct {
	bun.BaseModel `bun:"table:dichos"`

	ID          string       `bun:"id,pk"                          json:"id"`
	TermID      string       `bun:"term_id,notnull"                json:"termId"`
	Content     string       `bun:"content,notnull"                json:"content"`
	Translation string       `bun:"translation"                    json:"translation,omitempty"`
	AuthorID    string       `bun:"author_id,notnull"              json:"authorId"`
	Region      string       `bun:"region,notnull"                 json:"region"`
	Votes       VoteCounters `bun:"embed:votes_"                   json:"votes"`
	IsActive    bool         `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt   time.Time    `bun:"created_at,notnull"             json:"createdAt"`
	UpdatedAt   time.Time    `bun:"updated_at,notnull"             json:"updatedAt"`
}
