package handler

import (
	"net/http"
	"strconv"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// TermHandler handles term-related REST endpoints.
type TermHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTermHandler creates a new term handler.
func NewTermHandler(db database.Client, logger *zap.Logger) *TermHandler {
	return &TermHandler{
		db:     db,
		logger: logger,
	}
}

// CreateTerm submits a new term for the authenticated user.
func (h *TermHandler) CreateTerm(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateTermRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	term, err := h.db.Service().Term().CreateTerm(
		req.Context(), identity.UserID(req.Context()),
		body.Word, body.Region, body.Tags, body.Synonyms,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, term)
}

// ListTerms browses active terms newest first with offset pagination.
func (h *TermHandler) ListTerms(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()

	offset, err := strconv.Atoi(query.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	terms, err := h.db.Service().Term().List(
		req.Context(), query.Get("region"), queryLimit(req), offset,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, terms)
}

// GetTerm loads a term with its definitions and dichos.
func (h *TermHandler) GetTerm(w http.ResponseWriter, req bunrouter.Request) error {
	detail, err := h.db.Service().Term().GetTermDetail(
		req.Context(), req.Param("id"), req.Request.URL.Query().Get("region"),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, detail)
}

// Search finds terms matching the query against words, tags and synonyms.
func (h *TermHandler) Search(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()

	terms, err := h.db.Service().Term().Search(
		req.Context(), query.Get("q"), query.Get("region"), queryLimit(req),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, terms)
}

// Autocomplete suggests terms whose word starts with the given prefix.
func (h *TermHandler) Autocomplete(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()

	terms, err := h.db.Service().Term().Autocomplete(
		req.Context(), query.Get("q"), query.Get("region"), queryLimit(req),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, terms)
}

// Random returns a random active term.
func (h *TermHandler) Random(w http.ResponseWriter, req bunrouter.Request) error {
	term, err := h.db.Service().Term().Random(
		req.Context(), req.Request.URL.Query().Get("region"),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, term)
}

// queryLimit parses the limit query parameter, returning 0 when absent so
// services apply their defaults.
func queryLimit(req bunrouter.Request) int {
	limit, err := strconv.Atoi(req.Request.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
