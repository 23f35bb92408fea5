package events

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	ApplicationID int64
	JobID         int64
	CandidateID   int64
	MatchScore    float64
}
