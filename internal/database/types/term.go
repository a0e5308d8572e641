package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var (
	ErrTermNotFound    = errors.New("term not found")
	ErrDuplicateTerm   = errors.New("term already exists for this region")
	ErrNoEligibleTerms = errors.New("no eligible terms available")
	ErrInvalidRegion   = errors.New("invalid region")
	ErrEmptyContent    = errors.New("content must not be empty")
)

// RegionGeneral is the catch-all region; queries filtered by it (or by an
// empty filter) match terms from every region.
const RegionGeneral = "General"

// Regions lists the accepted region values for terms and definitions.
var Regions = []string{
	"Mexico", "Spain", "Argentina", "Colombia", "Venezuela", "Peru",
	"Chile", "Ecuador", "Bolivia", "Uruguay", "Paraguay", "Costa Rica",
	"Panama", "Guatemala", "Honduras", "Nicaragua", "El Salvador",
	"Dominican Republic", "Puerto Rico", "Cuba", RegionGeneral,
}

// IsValidRegion reports whether the given region is part of the catalog.
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}

	return false
}

// Term is a slang word submitted by a user. WordFolded holds the
// accent-folded form used for case and accent insensitive matching; it is
// derived from Word on insert and never exposed.
type Term struct {
	bun.BaseModel `bun:"table:terms"`

	ID         string    `bun:"id,pk"                          json:"id"`
	Word       string    `bun:"word,notnull"                   json:"word"`
	WordFolded string    `bun:"word_folded,notnull"            json:"-"`
	Region     string    `bun:"region,notnull"                 json:"region"`
	Tags       []string  `bun:"tags,array"                     json:"tags"`
	Synonyms   []string  `bun:"synonyms,array"                 json:"synonyms"`
	AuthorID   string    `bun:"author_id,notnull"              json:"authorId"`
	IsActive   bool      `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt  time.Time `bun:"created_at,notnull"             json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"             json:"updatedAt"`
}
