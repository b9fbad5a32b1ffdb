package events

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsBookable reports whether tickets may be sold for an event in this status
func (s EventStatus) IsBookable() bool {
	return s == EventStatusPublished
}
