package types

// WordOfDayStats aggregates vote activity across all active definitions of
// the selected term.
type WordOfDayStats struct {
	DefinitionCount int64 `json:"definitionCount"`
	TotalVotesUp    int64 `json:"totalVotesUp"`
	TotalVotesDown  int64 `json:"totalVotesDown"`
	Score           int64 `json:"score"`
}

// WordOfDay is the deterministic daily selection: the term, its
// highest-voted active definition and aggregate vote statistics.
type WordOfDay struct {
	Date       string         `json:"date"`
	Seed       int64          `json:"seed"`
	Term       *Term          `json:"term"`
	Definition *Definition    `json:"definition,omitempty"`
	Stats      WordOfDayStats `json:"stats"`
}
