package identity

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type contextKey int

const (
	userIDKey contextKey = iota
	clientIPKey
)

// userIDHeader carries the authenticated user's stable identifier, set by
// the auth proxy after session validation.
const userIDHeader = "X-User-ID"

// Middleware extracts the caller's identity and client IP into the request
// context.
type Middleware struct {
	logger *zap.Logger
}

// New creates a new identity middleware.
func New(logger *zap.Logger) *Middleware {
	return &Middleware{logger: logger.Named("identity")}
}

// AsRESTMiddleware returns a bunrouter middleware that stores the caller's
// user ID and client IP in the request context.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		ctx := req.Context()

		if userID := strings.TrimSpace(req.Header.Get(userIDHeader)); userID != "" {
			ctx = context.WithValue(ctx, userIDKey, userID)
		}

		ctx = context.WithValue(ctx, clientIPKey, clientIP(req.Request))

		return next(w, req.WithContext(ctx))
	}
}

// UserID returns the authenticated user ID from the context, or an empty
// string for anonymous requests.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}

	return ""
}

// ClientIP returns the client IP stored in the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}

	return ""
}

// clientIP resolves the originating address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the original client
		if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}

		return strings.TrimSpace(forwarded)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
