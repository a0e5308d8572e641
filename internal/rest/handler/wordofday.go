package handler

import (
	"net/http"
	"time"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// WordOfDayHandler handles the daily term selection endpoint.
type WordOfDayHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewWordOfDayHandler creates a new word of day handler.
func NewWordOfDayHandler(db database.Client, logger *zap.Logger) *WordOfDayHandler {
	return &WordOfDayHandler{
		db:     db,
		logger: logger,
	}
}

// Get returns the word of the day. An optional date query parameter
// (YYYY-MM-DD) selects a specific day, defaulting to today.
func (h *WordOfDayHandler) Get(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.Request.URL.Query()
	region := query.Get("region")

	var (
		result any
		err    error
	)

	if dateParam := query.Get("date"); dateParam != "" {
		date, parseErr := time.Parse(time.DateOnly, dateParam)
		if parseErr != nil {
			return badRequest(w, "invalid date, expected YYYY-MM-DD")
		}

		result, err = h.db.Service().WordOfDay().SelectForDate(req.Context(), date, region)
	} else {
		result, err = h.db.Service().WordOfDay().Today(req.Context(), region)
	}

	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, result)
}
