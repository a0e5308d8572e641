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

// FlagHandler handles content report REST endpoints.
type FlagHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewFlagHandler creates a new flag handler.
func NewFlagHandler(db database.Client, logger *zap.Logger) *FlagHandler {
	return &FlagHandler{
		db:     db,
		logger: logger,
	}
}

// Report files a flag against a piece of content.
func (h *FlagHandler) Report(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.FlagRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	targetType, err := enum.TargetTypeString(body.TargetType)
	if err != nil {
		return badRequest(w, "unknown target type")
	}

	reason, err := enum.FlagReasonString(body.Reason)
	if err != nil {
		reason = enum.FlagReasonOther
	}

	flag, err := h.db.Service().Flag().Report(
		req.Context(), identity.UserID(req.Context()),
		targetType, body.TargetID, reason, body.CustomReason,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, flag)
}

// Pending lists flags awaiting review.
func (h *FlagHandler) Pending(w http.ResponseWriter, req bunrouter.Request) error {
	flags, err := h.db.Service().Flag().Pending(req.Context(), queryLimit(req))
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, flags)
}

// Resolve records a moderator decision on a flag.
func (h *FlagHandler) Resolve(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ResolveFlagRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	status, err := enum.FlagStatusString(body.Status)
	if err != nil {
		return badRequest(w, "unknown flag status")
	}

	flag, err := h.db.Service().Flag().Resolve(
		req.Context(), req.Param("id"), identity.UserID(req.Context()), status, body.Notes,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, flag)
}
