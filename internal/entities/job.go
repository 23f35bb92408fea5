package entities

import "time"

type ExperienceLevel string

const (
	EntryLevel     ExperienceLevel = "entry"
	MidLevel       ExperienceLevel = "mid"
	SeniorLevel    ExperienceLevel = "senior"
	ExecutiveLevel ExperienceLevel = "executive"
)

type Company struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
}

type Job struct {
	ID              int64
	CompanyID       int64
	Company         Company
	Title           string
	Description     string
	Requirements    string
	ExperienceLevel ExperienceLevel
	Location        string
	SalaryMin       *float64
	SalaryMax       *float64
	IsRemote        bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullText is the text the skill extractor runs over.
func (j *Job) FullText() string {
	return j.Requirements + " " + j.Description
}
