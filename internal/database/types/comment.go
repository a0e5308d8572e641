package types

import (
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is a user remark on a definition. ParentID is set for threaded
// replies and null for top-level comments.
type Comment struct {
	bun.BaseModel `bun:"table:comments"`

	ID           string         `bun:"id,pk"                          json:"id"`
	DefinitionID string         `bun:"definition_id,notnull"          json:"definitionId"`
	UserID       string         `bun:"user_id,notnull"                json:"userId"`
	Content      string         `bun:"content,notnull"                json:"content"`
	ParentID     sql.NullString `bun:"parent_id"                      json:"parentId,omitempty"`
	Votes        VoteCounters   `bun:"embed:votes_"                   json:"votes"`
	IsActive     bool           `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt    time.Time      `bun:"created_at,notnull"             json:"createdAt"`
	UpdatedAt    time.Time      `bun:"updated_at,notnull"             json:"updatedAt"`
}
