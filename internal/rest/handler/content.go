package handler

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ContentHandler handles definition, dicho and comment REST endpoints.
type ContentHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(db database.Client, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		db:     db,
		logger: logger,
	}
}

// CreateDefinition submits a definition for a term.
func (h *ContentHandler) CreateDefinition(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateDefinitionRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	definition, err := h.db.Service().Content().CreateDefinition(
		req.Context(), identity.UserID(req.Context()), req.Param("id"),
		body.Content, body.Example, body.AudioURL, body.Region,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, definition)
}

// CreateDicho submits a regional saying for a term.
func (h *ContentHandler) CreateDicho(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateDichoRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	dicho, err := h.db.Service().Content().CreateDicho(
		req.Context(), identity.UserID(req.Context()), req.Param("id"),
		body.Content, body.Translation, body.Region,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, dicho)
}

// CreateComment posts a comment on a definition.
func (h *ContentHandler) CreateComment(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateCommentRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	comment, err := h.db.Service().Content().CreateComment(
		req.Context(), identity.UserID(req.Context()), req.Param("id"),
		body.Content, body.ParentID,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, comment)
}

// GetComments lists comments on a definition. The parent query parameter
// selects replies under one thread.
func (h *ContentHandler) GetComments(w http.ResponseWriter, req bunrouter.Request) error {
	comments, err := h.db.Service().Content().GetComments(
		req.Context(), req.Param("id"), req.Request.URL.Query().Get("parent"),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, comments)
}
