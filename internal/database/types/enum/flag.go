package enum

// FlagStatus represents the moderation state of a content flag.
//
//go:generate go tool enumer -type=FlagStatus -trimprefix=FlagStatus -transform=lower -json -text
type FlagStatus int

const (
	FlagStatusPending FlagStatus = iota
	FlagStatusReviewed
	FlagStatusResolved
	FlagStatusDismissed
)

// FlagReason represents why content was reported.
//
//go:generate go tool enumer -type=FlagReason -trimprefix=FlagReason -transform=snake -json -text
type FlagReason int

const (
	FlagReasonInappropriateContent FlagReason = iota
	FlagReasonSpam
	FlagReasonHarassment
	FlagReasonHateSpeech
	FlagReasonMisinformation
	FlagReasonCopyrightViolation
	FlagReasonPersonalInformation
	FlagReasonOther
)
