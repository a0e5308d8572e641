package types

import (
	"time"

	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bun"
)

// Notification is a stored in-app message for a user. Delivery is
// best-effort: emission failures never abort the triggering operation.
type Notification struct {
	bun.BaseModel `bun:"table:notifications"`

	ID          string                `bun:"id,pk"              json:"id"`
	UserID      string                `bun:"user_id,notnull"    json:"userId"`
	Type        enum.NotificationType `bun:"type,notnull"       json:"type"`
	Title       string                `bun:"title,notnull"      json:"title"`
	Message     string                `bun:"message,notnull"    json:"message"`
	RelatedID   string                `bun:"related_id"         json:"relatedId,omitempty"`
	RelatedType string                `bun:"related_type"       json:"relatedType,omitempty"`
	IsRead      bool                  `bun:"is_read,notnull,default:false" json:"isRead"`
	CreatedAt   time.Time             `bun:"created_at,notnull" json:"createdAt"`
}
