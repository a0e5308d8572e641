package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrRateLimited     = errors.New("rate limit exceeded")
)

// User is a dictionary contributor. The primary key is the opaque, stable
// identifier issued by the external identity provider.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID              string               `bun:"id,pk"                          json:"id"`
	Name            string               `bun:"name,notnull"                   json:"name"`
	Email           string               `bun:"email,notnull"                  json:"email"`
	Username        string               `bun:"username"                       json:"username,omitempty"`
	Avatar          string               `bun:"avatar"                         json:"avatar,omitempty"`
	Contributions   ContributionCounters `bun:"embed:contrib_"                 json:"contributions"`
	Badges          []string             `bun:"badges,array"                   json:"badges"`
	Reputation      int64                `bun:"reputation,notnull,default:0"   json:"reputation"`
	Role            string               `bun:"role,notnull,default:'user'"    json:"role"`
	PreferredRegion string               `bun:"preferred_region"               json:"preferredRegion,omitempty"`
	IsActive        bool                 `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt       time.Time            `bun:"created_at,notnull"             json:"createdAt"`
	UpdatedAt       time.Time            `bun:"updated_at,notnull"             json:"updatedAt"`
}

// HasBadge reports whether the user already holds the given badge.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}

	return false
}
