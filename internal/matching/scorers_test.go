package matching

import (
	"strings"
	"testing"
	"time"

	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/stretchr/testify/assert"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestMatcher() *Matcher {
	return NewMatcher().WithNow(fixedNow)
}

func profileWith(skills []string) *entities.Profile {
	return &entities.Profile{Skills: strings.Join(skills, ",")}
}

func jobWithText(text string) *entities.Job {
	return &entities.Job{Requirements: text}
}

func floatPtr(v float64) *float64 {
	return &v
}

func Test_ScoreSkills_EmptyEitherSideIsZero(t *testing.T) {

	m := newTestMatcher()

	noSkills := profileWith(nil)
	assert.Equal(t, 0.0, m.scoreSkills(noSkills, jobWithText("Python and Django developer")))

	hasSkills := profileWith([]string{"python"})
	assert.Equal(t, 0.0, m.scoreSkills(hasSkills, jobWithText("a wonderful place to work")))
}

func Test_ScoreSkills_ExactMatchIsFull(t *testing.T) {

	m := newTestMatcher()
	profile := profileWith([]string{"python", "django"})
	job := jobWithText("Looking for Python and Django developer")

	assert.InDelta(t, 100.0, m.scoreSkills(profile, job), 0.01)
}

func Test_ScoreSkills_PartialMatchScoresLower(t *testing.T) {

	m := newTestMatcher()
	profile := profileWith([]string{"javascript"})
	// extracts both "java" and "javascript"
	job := jobWithText("Senior JavaScript engineer")

	score := m.scoreSkills(profile, job)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func Test_ScoreExperience_InclusiveBoundaries(t *testing.T) {

	m := newTestMatcher()
	job := &entities.Job{ExperienceLevel: entities.MidLevel} // 2 to 5 years

	assert.Equal(t, 100.0, m.scoreExperience(&entities.Profile{ExperienceYears: 2}, job))
	assert.Equal(t, 100.0, m.scoreExperience(&entities.Profile{ExperienceYears: 5}, job))
	assert.Equal(t, 100.0, m.scoreExperience(&entities.Profile{ExperienceYears: 3}, job))
}

func Test_ScoreExperience_UnderqualifiedPenalty(t *testing.T) {

	m := newTestMatcher()
	senior := &entities.Job{ExperienceLevel: entities.SeniorLevel} // 5 to 10 years

	// five years short: 100 - 20*5, floored at zero
	assert.Equal(t, 0.0, m.scoreExperience(&entities.Profile{ExperienceYears: 0}, senior))
	assert.Equal(t, 60.0, m.scoreExperience(&entities.Profile{ExperienceYears: 3}, senior))
}

func Test_ScoreExperience_OverqualifiedIsGentler(t *testing.T) {

	m := newTestMatcher()
	entry := &entities.Job{ExperienceLevel: entities.EntryLevel} // 0 to 2 years

	assert.Equal(t, 95.0, m.scoreExperience(&entities.Profile{ExperienceYears: 3}, entry))
	// deep overqualification bottoms out at 70
	assert.Equal(t, 70.0, m.scoreExperience(&entities.Profile{ExperienceYears: 30}, entry))
}

func Test_ScoreExperience_ExecutiveHasNoUpperBound(t *testing.T) {

	m := newTestMatcher()
	executive := &entities.Job{ExperienceLevel: entities.ExecutiveLevel}

	assert.Equal(t, 100.0, m.scoreExperience(&entities.Profile{ExperienceYears: 40}, executive))
}

func Test_ScoreExperience_UnknownLevelIsNeutral(t *testing.T) {

	m := newTestMatcher()
	job := &entities.Job{ExperienceLevel: "principal"}

	assert.Equal(t, 50.0, m.scoreExperience(&entities.Profile{ExperienceYears: 7}, job))
}

func Test_ScoreLocation_RemoteJob(t *testing.T) {

	remoteJob := &entities.Job{IsRemote: true, Location: "Remote"}

	for _, pref := range []entities.RemotePreference{entities.RemoteOnly, entities.Hybrid, entities.FlexibleWork} {
		profile := &entities.Profile{RemotePreference: pref}
		assert.Equal(t, 100.0, scoreLocation(profile, remoteJob))
	}

	assert.Equal(t, 70.0, scoreLocation(&entities.Profile{RemotePreference: entities.OnSite}, remoteJob))
	assert.Equal(t, 70.0, scoreLocation(&entities.Profile{}, remoteJob))
}

func Test_ScoreLocation_OnSiteMatching(t *testing.T) {

	job := &entities.Job{Location: "New York, NY"}

	noPrefs := &entities.Profile{}
	assert.Equal(t, 50.0, scoreLocation(noPrefs, job))

	exact := &entities.Profile{PreferredLocations: "New York"}
	assert.Equal(t, 100.0, scoreLocation(exact, job))

	regional := &entities.Profile{PreferredLocations: "Salem Oregon"}
	oregonJob := &entities.Job{Location: "Portland Oregon"}
	assert.Equal(t, 80.0, scoreLocation(regional, oregonJob))

	mismatch := &entities.Profile{PreferredLocations: "Berlin"}
	assert.Equal(t, 20.0, scoreLocation(mismatch, job))
}

func Test_ScoreSalary_MissingDataIsNeutral(t *testing.T) {

	noPreference := &entities.Profile{}
	job := &entities.Job{SalaryMax: floatPtr(1200)}
	assert.Equal(t, 75.0, scoreSalary(noPreference, job))

	profile := &entities.Profile{PreferredSalaryMin: floatPtr(900)}
	noSalary := &entities.Job{}
	assert.Equal(t, 75.0, scoreSalary(profile, noSalary))
}

func Test_ScoreSalary_Overlap(t *testing.T) {

	// candidate range fully inside the job range
	inside := &entities.Profile{PreferredSalaryMin: floatPtr(900), PreferredSalaryMax: floatPtr(1000)}
	wideJob := &entities.Job{SalaryMin: floatPtr(800), SalaryMax: floatPtr(2000)}
	assert.Equal(t, 100.0, scoreSalary(inside, wideJob))

	// zero-width candidate range overlapping the job range
	pinned := &entities.Profile{PreferredSalaryMin: floatPtr(1000), PreferredSalaryMax: floatPtr(1000)}
	job := &entities.Job{SalaryMin: floatPtr(800), SalaryMax: floatPtr(1200)}
	assert.Equal(t, 90.0, scoreSalary(pinned, job))

	// candidate max defaults to 1.5x min
	defaulted := &entities.Profile{PreferredSalaryMin: floatPtr(900)}
	assert.InDelta(t, 93.3, scoreSalary(defaulted, job), 0.05)
}

func Test_ScoreSalary_CandidateWantsMore(t *testing.T) {

	profile := &entities.Profile{PreferredSalaryMin: floatPtr(2000)}
	job := &entities.Job{SalaryMax: floatPtr(1000)}

	// gap is 100% of the job max, penalty floors at 20
	assert.Equal(t, 20.0, scoreSalary(profile, job))
}

func Test_ScoreSalary_JobPaysMore(t *testing.T) {

	profile := &entities.Profile{PreferredSalaryMin: floatPtr(500), PreferredSalaryMax: floatPtr(700)}
	job := &entities.Job{SalaryMin: floatPtr(800), SalaryMax: floatPtr(1200)}

	assert.Equal(t, 95.0, scoreSalary(profile, job))
}
