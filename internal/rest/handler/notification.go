package handler

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// NotificationHandler handles notification inbox REST endpoints.
type NotificationHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(db database.Client, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		db:     db,
		logger: logger,
	}
}

// List returns the authenticated user's notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, req bunrouter.Request) error {
	unreadOnly := req.Request.URL.Query().Get("unread") == "true"

	notifications, err := h.db.Service().Notification().List(
		req.Context(), identity.UserID(req.Context()), unreadOnly, queryLimit(req),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, notifications)
}

// MarkRead marks notifications as read. An empty ID list marks the whole
// inbox.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.MarkReadRequest
	if err := decodeBody(req, &body); err != nil {
		return badRequest(w, "invalid request body")
	}

	err := h.db.Service().Notification().MarkRead(
		req.Context(), identity.UserID(req.Context()), body.IDs,
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// UnreadCount returns the number of unread notifications.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, req bunrouter.Request) error {
	count, err := h.db.Service().Notification().UnreadCount(
		req.Context(), identity.UserID(req.Context()),
	)
	if err != nil {
		return respondError(w, h.logger, err)
	}

	return bunrouter.JSON(w, map[string]int64{"count": count})
}
