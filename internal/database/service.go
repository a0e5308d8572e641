package database

import (
	"time"

	"github.com/jergadic/jergadic/internal/database/service"
	"github.com/jergadic/jergadic/internal/setup/config"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	vote         *service.VoteService
	term         *service.TermService
	content      *service.ContentService
	trending     *service.TrendingService
	wordOfDay    *service.WordOfDayService
	reputation   *service.ReputationService
	badge        *service.BadgeService
	user         *service.UserService
	flag         *service.FlagService
	notification *service.NotificationService
}

// NewService creates a new service instance with all services. The trending
// and word-of-day caches live in separate Redis databases so the daily
// selection can be flushed independently; either client may be nil to
// disable that cache.
func NewService(
	repository *Repository, cache, wordOfDayCache rueidis.Client,
	trendingCfg *config.Trending, logger *zap.Logger,
) *Service {
	userModel := repository.User()
	termModel := repository.Term()
	definitionModel := repository.Definition()
	dichoModel := repository.Dicho()
	commentModel := repository.Comment()
	voteModel := repository.Vote()
	flagModel := repository.Flag()
	notificationModel := repository.Notification()

	reputationService := service.NewReputation(userModel, logger)
	badgeService := service.NewBadge(userModel, notificationModel, logger)

	trendingTTL := time.Duration(trendingCfg.CacheTTLSeconds) * time.Second
	wordOfDayTTL := time.Duration(trendingCfg.WordOfDayTTLSeconds) * time.Second

	return &Service{
		vote: service.NewVote(
			voteModel, definitionModel, commentModel, dichoModel,
			userModel, notificationModel, reputationService, badgeService, logger,
		),
		term: service.NewTerm(
			termModel, definitionModel, dichoModel, userModel,
			reputationService, badgeService, logger,
		),
		content: service.NewContent(
			termModel, definitionModel, dichoModel, commentModel,
			userModel, notificationModel, reputationService, badgeService, logger,
		),
		trending: service.NewTrending(
			definitionModel, termModel, cache, trendingTTL, trendingCfg.DefaultLimit, logger,
		),
		wordOfDay:    service.NewWordOfDay(termModel, definitionModel, wordOfDayCache, wordOfDayTTL, logger),
		reputation:   reputationService,
		badge:        badgeService,
		user:         service.NewUser(userModel, badgeService, logger),
		flag:         service.NewFlag(flagModel, definitionModel, commentModel, dichoModel, logger),
		notification: service.NewNotification(notificationModel, logger),
	}
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Term returns the term service.
func (s *Service) Term() *service.TermService {
	return s.term
}

// Content returns the content service.
func (s *Service) Content() *service.ContentService {
	return s.content
}

// Trending returns the trending service.
func (s *Service) Trending() *service.TrendingService {
	return s.trending
}

// WordOfDay returns the word of day service.
func (s *Service) WordOfDay() *service.WordOfDayService {
	return s.wordOfDay
}

// Reputation returns the reputation service.
func (s *Service) Reputation() *service.ReputationService {
	return s.reputation
}

// Badge returns the badge service.
func (s *Service) Badge() *service.BadgeService {
	return s.badge
}

// User returns the user service.
func (s *Service) User() *service.UserService {
	return s.user
}

// Flag returns the flag service.
func (s *Service) Flag() *service.FlagService {
	return s.flag
}

// Notification returns the notification service.
func (s *Service) Notification() *service.NotificationService {
	return s.notification
}
