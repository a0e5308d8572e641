package handler

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// VoteHandler handles vote-related REST endpoints.
type VoteHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(db database.Client, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		db:     db,
		logger: logger,
	}
}

// CastVote applies a vote request for the authenticated user. Repeating the
// same polarity retracts the vote; the opposite polarity flips it.
func (h *VoteHandler) CastVote(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.VoteRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	targetType, err := enum.TargetTypeString(body.TargetType)
	if err != nil {
		return badRequest(w, "unknown target type")
	}

	polarity, err := enum.PolarityString(body.Polarity)
	if err != nil {
		return badRequest(w, "unknown polarity")
	}

	result, err := h.db.Service().Vote().CastVote(
		req.Context(), identity.UserID(req.Context()), targetType, body.TargetID, polarity,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	response := restTypes.VoteResponse{Counters: result.Counters}
	if result.Polarity != nil {
		p := result.Polarity.String()
		response.Polarity = &p
	}

	return bunrouter.JSON(w, response)
}

// GetVote returns the authenticated user's current vote on a target.
func (h *VoteHandler) GetVote(w http.ResponseWriter, req bunrouter.Request) error {
	targetType, err := enum.TargetTypeString(req.Request.URL.Query().Get("targetType"))
	if err != nil {
		return badRequest(w, "unknown target type")
	}

	targetID := req.Request.URL.Query().Get("targetId")
	if targetID == "" {
		return badRequest(w, "missing target id")
	}

	polarity, err := h.db.Service().Vote().GetUserVote(
		req.Context(), identity.UserID(req.Context()), targetType, targetID,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	response := restTypes.VoteResponse{}
	if polarity != nil {
		p := polarity.String()
		response.Polarity = &p
	}

	return bunrouter.JSON(w, response)
}
