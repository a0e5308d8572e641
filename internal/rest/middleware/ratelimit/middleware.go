package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/jergadic/jergadic/internal/ratelimit"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	restTypes "github.com/jergadic/jergadic/internal/rest/types"
	"github.com/jergadic/jergadic/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

const (
	headerLimit     = "X-RateLimit-Limit"
	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
	headerRetryAt   = "Retry-After"
)

// Middleware implements fixed-window rate limiting for write endpoints.
// Requests are keyed by user ID when authenticated, client IP otherwise.
type Middleware struct {
	limiter *ratelimit.Limiter
	max     int
	logger  *zap.Logger
}

// New creates a new rate limiting middleware.
func New(cfg *config.RateLimit, logger *zap.Logger) *Middleware {
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return &Middleware{
		limiter: ratelimit.New(window, cfg.MaxRequests, logger),
		max:     cfg.MaxRequests,
		logger:  logger.Named("ratelimit"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware that enforces the rate
// limit and reports the window state in response headers.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		key := identity.UserID(req.Context())
		if key == "" {
			key = identity.ClientIP(req.Context())
		}

		allowed := m.limiter.Allow(key)
		remaining, resetAt := m.limiter.Status(key)

		w.Header().Set(headerLimit, fmt.Sprintf("%d", m.max))
		w.Header().Set(headerRemaining, fmt.Sprintf("%d", remaining))
		w.Header().Set(headerReset, fmt.Sprintf("%d", resetAt.Unix()))

		if !allowed {
			retryAfter := time.Until(resetAt)
			if retryAfter > 0 {
				w.Header().Set(headerRetryAt, fmt.Sprintf("%.0f", retryAfter.Seconds()))
			}

			m.logger.Debug("Rate limit exceeded",
				zap.String("key", key),
				zap.Time("resetAt", resetAt))

			w.WriteHeader(http.StatusTooManyRequests)

			return sonic.ConfigDefault.NewEncoder(w).Encode(restTypes.ErrorResponse{
				Error: types.ErrRateLimited.Error(),
			})
		}

		return next(w, req)
	}
}
