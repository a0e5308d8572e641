package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// captureRouter wires the identity middleware in front of a handler that
// records what the middleware stored in the context.
func captureRouter(userID, clientIP *string) *bunrouter.Router {
	mw := identity.New(zap.NewNop())

	router := bunrouter.New(bunrouter.Use(mw.AsRESTMiddleware))
	router.GET("/probe", func(_ http.ResponseWriter, req bunrouter.Request) error {
		*userID = identity.UserID(req.Context())
		*clientIP = identity.ClientIP(req.Context())

		return nil
	})

	return router
}

func TestUserIDExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "header present",
			header:   "user-123",
			expected: "user-123",
		},
		{
			name:     "header trimmed",
			header:   "  user-123  ",
			expected: "user-123",
		},
		{
			name:     "header absent",
			header:   "",
			expected: "",
		},
		{
			name:     "whitespace only is anonymous",
			header:   "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID, gotIP string
			router := captureRouter(&gotUserID, &gotIP)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}

			router.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.expected, gotUserID)
		})
	}
}

func TestClientIPResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.0.2.10:54321",
			expected:   "192.0.2.10",
		},
		{
			name:       "forwarded for single hop",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			expected:   "203.0.113.7",
		},
		{
			name:       "forwarded for takes first hop",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3"},
			expected:   "203.0.113.7",
		},
		{
			name:       "real ip fallback",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "198.51.100.4"},
			expected:   "198.51.100.4",
		},
		{
			name:       "forwarded for wins over real ip",
			remoteAddr: "10.0.0.1:80",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.4",
			},
			expected: "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID, gotIP string
			router := captureRouter(&gotUserID, &gotIP)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			router.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.expected, gotIP)
		})
	}
}
