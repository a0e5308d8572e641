package rest

import (
	"net/http"

	"github.com/jergadic/jergadic/internal/database"
	"github.com/jergadic/jergadic/internal/rest/handler"
	"github.com/jergadic/jergadic/internal/rest/middleware/identity"
	"github.com/jergadic/jergadic/internal/rest/middleware/ratelimit"
	"github.com/jergadic/jergadic/internal/setup/config"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	voteHandler         *handler.VoteHandler
	termHandler         *handler.TermHandler
	contentHandler      *handler.ContentHandler
	trendingHandler     *handler.TrendingHandler
	wordOfDayHandler    *handler.WordOfDayHandler
	userHandler         *handler.UserHandler
	flagHandler         *handler.FlagHandler
	notificationHandler *handler.NotificationHandler
}

// NewServer creates a new REST API server.
func NewServer(db database.Client, cfg *config.Config, logger *zap.Logger) http.Handler {
	// Create server instance with handlers
	server := &Server{
		voteHandler:         handler.NewVoteHandler(db, logger),
		termHandler:         handler.NewTermHandler(db, logger),
		contentHandler:      handler.NewContentHandler(db, logger),
		trendingHandler:     handler.NewTrendingHandler(db, logger),
		wordOfDayHandler:    handler.NewWordOfDayHandler(db, logger),
		userHandler:         handler.NewUserHandler(db, logger),
		flagHandler:         handler.NewFlagHandler(db, logger),
		notificationHandler: handler.NewNotificationHandler(db, logger),
	}

	// Create middleware instances
	identityMiddleware := identity.New(logger)
	rateLimiter := ratelimit.New(&cfg.RateLimit, logger)

	// Create base router
	router := bunrouter.New()

	router.Use(identityMiddleware.AsRESTMiddleware).WithGroup("/v1", func(g *bunrouter.Group) {
		// Read endpoints
		g.GET("/terms", server.termHandler.ListTerms)
		g.GET("/terms/:id", server.termHandler.GetTerm)
		g.GET("/search", server.termHandler.Search)
		g.GET("/autocomplete", server.termHandler.Autocomplete)
		g.GET("/random", server.termHandler.Random)
		g.GET("/trending/terms", server.trendingHandler.TrendingTerms)
		g.GET("/trending/definitions", server.trendingHandler.TrendingDefinitions)
		g.GET("/word-of-day", server.wordOfDayHandler.Get)
		g.GET("/definitions/:id/comments", server.contentHandler.GetComments)
		g.GET("/votes", server.voteHandler.GetVote)
		g.GET("/users/:id", server.userHandler.GetUser)
		g.GET("/users/:id/badges", server.userHandler.GetBadges)
		g.GET("/leaderboard", server.userHandler.Leaderboard)
		g.GET("/notifications", server.notificationHandler.List)
		g.GET("/notifications/unread-count", server.notificationHandler.UnreadCount)
		g.GET("/flags/pending", server.flagHandler.Pending)

		// Write endpoints share the fixed-window rate limit
		g.Use(rateLimiter.AsRESTMiddleware).WithGroup("", func(wg *bunrouter.Group) {
			wg.POST("/votes", server.voteHandler.CastVote)
			wg.POST("/terms", server.termHandler.CreateTerm)
			wg.POST("/terms/:id/definitions", server.contentHandler.CreateDefinition)
			wg.POST("/terms/:id/dichos", server.contentHandler.CreateDicho)
			wg.POST("/definitions/:id/comments", server.contentHandler.CreateComment)
			wg.POST("/flags", server.flagHandler.Report)
			wg.PATCH("/flags/:id", server.flagHandler.Resolve)
			wg.POST("/users/sync", server.userHandler.Sync)
			wg.POST("/notifications/read", server.notificationHandler.MarkRead)
		})
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
