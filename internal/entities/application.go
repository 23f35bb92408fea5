package entities

import (
	"errors"
	"time"
)

type ReviewState string

const (
	StateApplied   ReviewState = "applied"
	StateMaybe     ReviewState = "maybe"
	StateInterview ReviewState = "interview"
	StateRejected  ReviewState = "rejected"
	StateAccepted  ReviewState = "accepted"
)

// ToTriageDecision validates an employer triage label. Only the three
// swipe decisions are reachable through the review queue.
func ToTriageDecision(s string) (ReviewState, error) {
	switch s {
	case string(StateAccepted):
		return StateAccepted, nil
	case string(StateRejected):
		return StateRejected, nil
	case string(StateMaybe):
		return StateMaybe, nil
	default:
		return "", errors.New("invalid triage decision")
	}
}

type Application struct {
	ID          int64
	JobID       int64
	CandidateID int64
	CoverLetter string
	State       ReviewState `gorm:"default:applied"`

	// Snapshot of the profile at submission time. Frozen once written.
	ExperienceYearsAtApply float64
	SkillsAtApply          string
	SalaryExpectation      *float64
	LocationPreference     string
	RemotePreference       RemotePreference

	// Denormalized match scores. Recomputed by the annotator, not a
	// source of truth.
	MatchScore           float64
	SkillsMatchScore     float64
	ExperienceMatchScore float64
	LocationMatchScore   float64
	SalaryMatchScore     float64

	ReviewedBy  *int64
	ReviewedAt  *time.Time
	ReviewNotes string

	AppliedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

func (a *Application) SkillsAtApplyAsArray() []string {
	return splitCommaList(a.SkillsAtApply)
}
