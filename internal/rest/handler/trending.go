package handler

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/database/types/enum"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// TrendingHandler handles trending REST endpoints.
type TrendingHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTrendingHandler creates a new trending handler.
func NewTrendingHandler(db database.Client, logger *zap.Logger) *TrendingHandler {
	return &TrendingHandler{
		db:     db,
		logger: logger,
	}
}

// TrendingTerms returns the top terms for a period.
func (h *TrendingHandler) TrendingTerms(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()

	terms, err := h.db.Service().Trending().TrendingTerms(
		req.Context(), parsePeriod(query.Get("period")), query.Get("region"), queryLimit(req),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, terms)
}

// TrendingDefinitions returns the top definitions for a period.
func (h *TrendingHandler) TrendingDefinitions(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()

	definitions, err := h.db.Service().Trending().TrendingDefinitions(
		req.Context(), parsePeriod(query.Get("period")), query.Get("region"), queryLimit(req),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, definitions)
}

// parsePeriod maps the period query parameter to its enum, defaulting to
// week for unknown values.
func parsePeriod(value string) enum.TrendingPeriod {
	period, err := enum.TrendingPeriodString(value)
	if err != nil {
		return enum.TrendingPeriodWeek
	}

	return period
}
