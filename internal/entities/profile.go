package entities

import (
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
)

type RemotePreference string

const (
	OnSite       RemotePreference = "on_site"
	RemoteOnly   RemotePreference = "remote"
	Hybrid       RemotePreference = "hybrid"
	FlexibleWork RemotePreference = "flexible"
)

// AcceptsRemote reports whether the candidate is happy with a fully remote job.
func (p RemotePreference) AcceptsRemote() bool {
	return p == RemoteOnly || p == Hybrid || p == FlexibleWork
}

type Profile struct {
	ID                 int64
	Name               string
	Skills             string
	ExperienceYears    int
	CareerStartedAt    *time.Time
	PreferredLocations string
	PreferredSalaryMin *float64
	PreferredSalaryMax *float64
	RemotePreference   RemotePreference
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewProfile(name string, skills []string, experienceYears int, locations []string) *Profile {
	return &Profile{
		Name:               name,
		Skills:             strings.Join(skills, ","),
		ExperienceYears:    experienceYears,
		PreferredLocations: strings.Join(locations, ","),
	}
}

func (p *Profile) SkillsAsArray() []string {
	return splitCommaList(p.Skills)
}

func (p *Profile) PreferredLocationsAsArray() []string {
	return splitCommaList(p.PreferredLocations)
}

// CurrentExperienceYears returns total experience in years as of today.
// A recorded career start date always wins over the stored integer.
func (p *Profile) CurrentExperienceYears(today time.Time) float64 {
	if p.CareerStartedAt != nil {
		years := today.Sub(*p.CareerStartedAt).Hours() / 24 / 365.25
		return math.Max(0, math.Round(years*10)/10)
	}
	return float64(p.ExperienceYears)
}

func splitCommaList(s string) []string {
	if s == "" {
		return []string{}
	}
	return lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
