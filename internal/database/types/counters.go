package types

// VoteCounters tracks vote tallies embedded in every voteable entity.
// Score is always recomputed as Up - Down in the same statement that
// changes either counter; it is never written independently.
type VoteCounters struct {
	Up    int64 `bun:"up,notnull,default:0"    json:"up"`
	Down  int64 `bun:"down,notnull,default:0"  json:"down"`
	Score int64 `bun:"score,notnull,default:0" json:"score"`
}

// ContributionCounters tracks per-user submission tallies. Counters only
// ever increase during normal operation.
type ContributionCounters struct {
	TermsSubmitted       int64 `bun:"terms_submitted,notnull,default:0"       json:"termsSubmitted"`
	DefinitionsSubmitted int64 `bun:"definitions_submitted,notnull,default:0" json:"definitionsSubmitted"`
	VotesGiven           int64 `bun:"votes_given,notnull,default:0"           json:"votesGiven"`
	CommentsPosted       int64 `bun:"comments_posted,notnull,default:0"       json:"commentsPosted"`
	DichosSubmitted      int64 `bun:"dichos_submitted,notnull,default:0"      json:"dichosSubmitted"`
}
