package enum

// Polarity represents the direction of a vote.
//
//go:generate go tool enumer -type=Polarity -trimprefix=Polarity -transform=lower -json -text
type Polarity int

const (
	PolarityUp Polarity = iota
	PolarityDown
)

// TargetType represents the kind of entity being voted on.
//
//go:generate go tool enumer -type=TargetType -trimprefix=TargetType -transform=lower -json -text
type TargetType int

const (
	TargetTypeDefinition TargetType = iota
	TargetTypeComment
	TargetTypeDicho
)
