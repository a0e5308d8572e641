package types

import (
	"github.com/jergadic/jergadic/internal/database/types"
)

// VoteRequest is the body for casting a vote.
type VoteRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Polarity   string `json:"polarity"`
}

// VoteResponse reports the vote outcome and the target's updated counters.
type VoteResponse struct {
	// Polarity of the stored vote after the request; null when the vote
	// was retracted.
	Polarity *string            `json:"polarity"`
	Counters types.VoteCounters `json:"counters"`
}

// CreateTermRequest is the body for submitting a new term.
type CreateTermRequest struct {
	Word     string   `json:"word"`
	Region   string   `json:"region"`
	Tags     []string `json:"tags"`
	Synonyms []string `json:"synonyms"`
}

// CreateDefinitionRequest is the body for submitting a definition.
type CreateDefinitionRequest struct {
	Content  string `json:"content"`
	Example  string `json:"example"`
	AudioURL string `json:"audioUrl"`
	Region   string `json:"region"`
}

// CreateDichoRequest is the body for submitting a dicho.
type CreateDichoRequest struct {
	Content     string `json:"content"`
	Translation string `json:"translation"`
	Region      string `json:"region"`
}

// CreateCommentRequest is the body for posting a comment.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId"`
}

// FlagRequest is the body for reporting content.
type FlagRequest struct {
	TargetType   string `json:"targetType"`
	TargetID     string `json:"targetId"`
	Reason       string `json:"reason"`
	CustomReason string `json:"customReason"`
}

// ResolveFlagRequest is the body for a moderator decision on a flag.
type ResolveFlagRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// SyncUserRequest is the body for syncing a profile from the identity
// provider.
type SyncUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Avatar          string `json:"avatar"`
	PreferredRegion string `json:"preferredRegion"`
}

// MarkReadRequest is the body for marking notifications as read. An empty
// ID list marks the whole inbox.
type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
