// Package badge holds the static badge catalog and its criteria
// evaluation. Awards themselves are persisted by the badge service; this
// package is pure policy.
package badge

import (
	"github.com/jergadic/jergadic/internal/database/types"
)

// Operator compares a user statistic against a criterion threshold.
type Operator int

const (
	OpGTE Operator = iota
	OpGT
	OpEQ
	OpLT
	OpLTE
)

// Compare applies the operator to (value, threshold).
func (o Operator) Compare(value, threshold int64) bool {
	switch o {
	case OpGTE:
		return value >= threshold
	case OpGT:
		return value > threshold
	case OpEQ:
		return value == threshold
	case OpLT:
		return value < threshold
	case OpLTE:
		return value <= threshold
	default:
		return false
	}
}

// Field identifies the user statistic a criterion inspects.
type Field int

const (
	FieldTermsSubmitted Field = iota
	FieldDefinitionsSubmitted
	FieldVotesGiven
	FieldCommentsPosted
	FieldDichosSubmitted
	FieldReputation
)

// Snapshot is the user state badges are evaluated against.
type Snapshot struct {
	Contributions types.ContributionCounters
	Reputation    int64
}

// Value resolves the field from a snapshot.
func (f Field) Value(snap Snapshot) int64 {
	switch f {
	case FieldTermsSubmitted:
		return snap.Contributions.TermsSubmitted
	case FieldDefinitionsSubmitted:
		return snap.Contributions.DefinitionsSubmitted
	case FieldVotesGiven:
		return snap.Contributions.VotesGiven
	case FieldCommentsPosted:
		return snap.Contributions.CommentsPosted
	case FieldDichosSubmitted:
		return snap.Contributions.DichosSubmitted
	case FieldReputation:
		return snap.Reputation
	default:
		return 0
	}
}

// Criterion is one (field, operator, threshold) requirement.
type Criterion struct {
	Field     Field
	Op        Operator
	Threshold int64
}

// Definition is one catalog entry. All criteria must hold (logical AND)
// for the badge to be earned.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Criteria    []Criterion
}

// Eligible reports whether the snapshot satisfies every criterion of the
// badge.
func (d Definition) Eligible(snap Snapshot) bool {
	for _, c := range d.Criteria {
		if !c.Op.Compare(c.Field.Value(snap), c.Threshold) {
			return false
		}
	}

	return true
}

// catalog is evaluated in declaration order. Entries are append-only:
// removing or reordering ids would break users' persisted badge sets.
var catalog = []Definition{
	{
		ID:          "newbie",
		Name:        "Novato",
		Description: "Bienvenido a JergaDic",
		Icon:        "🎯",
		Color:       "gray",
		Criteria:    []Criterion{{FieldTermsSubmitted, OpGTE, 1}},
	},
	{
		ID:          "contributor",
		Name:        "Contribuidor",
		Description: "Ha enviado 10 términos",
		Icon:        "📝",
		Color:       "blue",
		Criteria:    []Criterion{{FieldTermsSubmitted, OpGTE, 10}},
	},
	{
		ID:          "active_voter",
		Name:        "Votante Activo",
		Description: "Ha dado 50 votos",
		Icon:        "👍",
		Color:       "green",
		Criteria:    []Criterion{{FieldVotesGiven, OpGTE, 50}},
	},
	{
		ID:          "definition_master",
		Name:        "Maestro de Definiciones",
		Description: "Ha enviado 25 definiciones",
		Icon:        "📖",
		Color:       "purple",
		Criteria:    []Criterion{{FieldDefinitionsSubmitted, OpGTE, 25}},
	},
	{
		ID:          "regional_expert",
		Name:        "Experto Regional",
		Description: "Ha enviado 20 términos de su región",
		Icon:        "🌍",
		Color:       "yellow",
		Criteria:    []Criterion{{FieldTermsSubmitted, OpGTE, 20}},
	},
	{
		ID:          "dictionary_builder",
		Name:        "Constructor del Diccionario",
		Description: "Ha enviado 50 términos",
		Icon:        "🏗️",
		Color:       "orange",
		Criteria:    []Criterion{{FieldTermsSubmitted, OpGTE, 50}},
	},
	{
		ID:          "community_helper",
		Name:        "Ayudante de la Comunidad",
		Description: "Ha dado 100 votos positivos",
		Icon:        "🤝",
		Color:       "pink",
		Criteria:    []Criterion{{FieldVotesGiven, OpGTE, 100}},
	},
	{
		ID:          "top_contributor",
		Name:        "Contribuidor Top",
		Description: "Ha enviado 100 términos",
		Icon:        "🏆",
		Color:       "gold",
		Criteria:    []Criterion{{FieldTermsSubmitted, OpGTE, 100}},
	},
	{
		ID:          "legend",
		Name:        "Leyenda",
		Description: "Más de 500 contribuciones totales",
		Icon:        "⭐",
		Color:       "rainbow",
		Criteria:    []Criterion{{FieldReputation, OpGTE, 1000}},
	},
}

// Catalog returns the ordered badge catalog.
func Catalog() []Definition {
	return catalog
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}

	return Definition{}, false
}

// Progress reports how far a snapshot is towards a badge's first
// criterion, as a percentage clamped to 100.
func Progress(snap Snapshot, d Definition) float64 {
	if len(d.Criteria) == 0 {
		return 0
	}

	c := d.Criteria[0]
	if c.Threshold <= 0 {
		return 100
	}

	pct := float64(c.Field.Value(snap)) / float64(c.Threshold) * 100
	if pct > 100 {
		return 100
	}

	return pct
}
