package types

import "time"

// TermActivity is the per-term aggregate over definitions created inside a
// trending window, as returned by the grouped definition query.
type TermActivity struct {
	TermID          string    `bun:"term_id"          json:"termId"`
	DefinitionCount int64     `bun:"definition_count" json:"definitionCount"`
	TotalVoteScore  int64     `bun:"total_vote_score" json:"totalVoteScore"`
	LatestActivity  time.Time `bun:"latest_activity"  json:"latestActivity"`
}

// TrendingTerm is a ranked term with its window aggregates and composite
// score. TrendingScore is recomputed per query and never persisted.
type TrendingTerm struct {
	Term            *Term     `json:"term"`
	TrendingScore   float64   `json:"trendingScore"`
	DefinitionCount int64     `json:"definitionCount"`
	TotalVoteScore  int64     `json:"totalVoteScore"`
	LatestActivity  time.Time `json:"latestActivity"`
}
