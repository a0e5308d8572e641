package handler

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// UserHandler handles user-related REST endpoints.
type UserHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(db database.Client, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		db:     db,
		logger: logger,
	}
}

// Sync upserts the authenticated user's profile from the identity provider.
func (h *UserHandler) Sync(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.SyncUserRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	user, err := h.db.Service().User().Sync(req.Context(), &types.User{
		ID:              identity.UserID(req.Context()),
		Name:            body.Name,
		Email:           body.Email,
		Username:        body.Username,
		Avatar:          body.Avatar,
		PreferredRegion: body.PreferredRegion,
	})
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, user)
}

// GetUser returns a user profile.
func (h *UserHandler) GetUser(w http.ResponseWriter, req bunrouter.Request) error {
	user, err := h.db.Service().User().Get(req.Context(), req.Param("id"))
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, user)
}

// GetBadges reports a user's progress against the badge catalog.
func (h *UserHandler) GetBadges(w http.ResponseWriter, req bunrouter.Request) error {
	progress, err := h.db.Service().User().BadgeProgress(req.Context(), req.Param("id"))
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, progress)
}

// Leaderboard ranks users by the requested contribution dimension.
func (h *UserHandler) Leaderboard(w http.ResponseWriter, req bunrouter.Request) error {
	sortBy, err := enum.LeaderboardSortString(req.Request.URL.Query().Get("sort"))
	if err != nil {
		sortBy = enum.LeaderboardSortReputation
	}

	users, err := h.db.Service().User().Leaderboard(req.Context(), sortBy, queryLimit(req))
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, users)
}
