package enum

// TrendingPeriod represents the recency window for trending queries.
//
//go:generate go tool enumer -type=TrendingPeriod -trimprefix=TrendingPeriod -transform=lower -json -text
type TrendingPeriod int

const (
	TrendingPeriodDay TrendingPeriod = iota
	TrendingPeriodWeek
	TrendingPeriodMonth
	TrendingPeriodAll
)

// LeaderboardSort represents the ranking key for the user leaderboard.
//
//go:generate go tool enumer -type=LeaderboardSort -trimprefix=LeaderboardSort -transform=snake -json -text
type LeaderboardSort int

const (
	LeaderboardSortReputation LeaderboardSort = iota
	LeaderboardSortTerms
	LeaderboardSortDefinitions
	LeaderboardSortVotes
	LeaderboardSortComments
	LeaderboardSortDichos
)
