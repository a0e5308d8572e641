package database

import (
	"github.com/jergadic/jergadic/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	user         *models.UserModel
	term         *models.TermModel
	definition   *models.DefinitionModel
	dicho        *models.DichoModel
	comment      *models.CommentModel
	vote         *models.VoteModel
	flag         *models.FlagModel
	notification *models.NotificationModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		user:         models.NewUser(db, logger),
		term:         models.NewTerm(db, logger),
		definition:   models.NewDefinition(db, logger),
		dicho:        models.NewDicho(db, logger),
		comment:      models.NewComment(db, logger),
		vote:         models.NewVote(db, logger),
		flag:         models.NewFlag(db, logger),
		notification: models.NewNotification(db, logger),
	}
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Term returns the term model repository.
func (r *Repository) Term() *models.TermModel {
	return r.term
}

// Definition returns the definition model repository.
func (r *Repository) Definition() *models.DefinitionModel {
	return r.definition
}

// Dicho returns the dicho model repository.
func (r *Repository) Dicho() *models.DichoModel {
	return r.dicho
}

// Comment returns the comment model repository.
func (r *Repository) Comment() *models.CommentModel {
	return r.comment
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Flag returns the flag model repository.
func (r *Repository) Flag() *models.FlagModel {
	return r.flag
}

// Notification returns the notification model repository.
func (r *Repository) Notification() *models.NotificationModel {
	return r.notification
}
