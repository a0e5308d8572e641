package enum

// ContributionKind represents a per-user contribution counter.
//
//go:generate go tool enumer -type=ContributionKind -trimprefix=ContributionKind -transform=snake -json -text
type ContributionKind int

const (
	ContributionKindTerms ContributionKind = iota
	ContributionKindDefinitions
	ContributionKindVotes
	ContributionKindComments
	ContributionKindDichos
)
