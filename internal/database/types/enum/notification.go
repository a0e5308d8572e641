package enum

// NotificationType represents the kind of event a notification describes.
//
//go:generate go tool enumer -type=NotificationType -trimprefix=NotificationType -transform=snake -json -text
type NotificationType int

const (
	NotificationTypeVote NotificationType = iota
	NotificationTypeComment
	NotificationTypeDefinitionApproved
	NotificationTypeBadgeEarned
	NotificationTypeMention
	NotificationTypeSystem
)
