package events

var ProfileUpdatedTopic = "ProfileUpdatedEvent"

type ProfileUpdated struct {
	ProfileID int64
}
