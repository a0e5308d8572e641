package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var ErrDefinitionNotFound = errors.New("definition not found")

// Definition is a user-submitted meaning for a term.
type Definition struct {
	bun.BaseModel `bun:"table:definitions"`

	ID        string       `bun:"id,pk"                          json:"id"`
	TermID    string       `bun:"term_id,notnull"                json:"termId"`
	Content   string       `bun:"content,notnull"                json:"content"`
	Example   string       `bun:"example"                        json:"example,omitempty"`
	AudioURL  string       `bun:"audio_url"                      json:"audioUrl,omitempty"`
	AuthorID  string       `bun:"author_id,notnull"              json:"authorId"`
	Region    string       `bun:"region,notnull"                 json:"region"`
	Votes     VoteCounters `bun:"embed:votes_"                   json:"votes"`
	IsActive  bool         `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt time.Time    `bun:"created_at,notnull"             json:"createdAt"`
	UpdatedAt time.Time    `bun:"updated_at,notnull"             json:"updatedAt"`
}
