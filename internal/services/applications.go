package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/events"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/careerhub/jobmatch/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type profileRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Profile, error)
}

type jobRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Job, error)
	GetActive(ctx context.Context) ([]entities.Job, error)
}

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id int64) (*entities.Application, error)
	AppliedJobIDs(ctx context.Context, candidateID int64) ([]int64, error)
	PendingByJob(ctx context.Context, jobID int64) ([]entities.Application, error)
	PendingByCandidate(ctx context.Context, candidateID int64) ([]entities.Application, error)
	PendingAll(ctx context.Context) ([]entities.Application, error)
	UpdateScores(ctx context.Context, id int64, scores matching.MatchResult) error
	Triage(ctx context.Context, id int64, reviewerID int64, decision entities.ReviewState,
		notes string, at time.Time) (bool, error)
}

// ApplicationForm carries the fields a candidate can override when
// submitting; anything left empty falls back to the live profile.
type ApplicationForm struct {
	CoverLetter        string
	SalaryExpectation  *float64
	LocationPreference string
	RemotePreference   entities.RemotePreference
}

// ApplicationPrefill is the live computed fit plus the profile snapshot
// used to pre-populate an application form before submission.
type ApplicationPrefill struct {
	ExperienceYears    float64                   `json:"experience_years"`
	Skills             []string                  `json:"skills"`
	SalaryExpectation  *float64                  `json:"salary_expectation"`
	LocationPreference string                    `json:"location_preference"`
	RemotePreference   entities.RemotePreference `json:"remote_preference"`
	Scores             matching.MatchResult      `json:"scores"`
}

type ApplicationService struct {
	matcher      *matching.Matcher
	bus          EventBus.Bus
	profiles     profileRepository
	jobs         jobRepository
	applications applicationRepository
	now          func() time.Time
}

func NewApplicationService(matcher *matching.Matcher, bus EventBus.Bus, profiles profileRepository,
	jobs jobRepository, applications applicationRepository) *ApplicationService {

	return &ApplicationService{
		matcher:      matcher,
		bus:          bus,
		profiles:     profiles,
		jobs:         jobs,
		applications: applications,
		now:          time.Now,
	}
}

func (s *ApplicationService) WithNow(now func() time.Time) *ApplicationService {
	s.now = now
	return s
}

func (s *ApplicationService) Prefill(ctx context.Context, profileID, jobID int64) (*ApplicationPrefill, error) {

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	job, err := s.activeJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &ApplicationPrefill{
		ExperienceYears:    profile.CurrentExperienceYears(s.now()),
		Skills:             profile.SkillsAsArray(),
		SalaryExpectation:  profile.PreferredSalaryMin,
		LocationPreference: profile.PreferredLocations,
		RemotePreference:   profile.RemotePreference,
		Scores:             s.matcher.Score(profile, job),
	}, nil
}

// Submit writes the application with a frozen snapshot of the profile and
// the computed scores. The snapshot never changes again; the score columns
// are a cache the annotator may refresh later.
func (s *ApplicationService) Submit(ctx context.Context, profileID, jobID int64,
	form ApplicationForm) (*entities.Application, error) {

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	job, err := s.activeJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	scores := s.matcher.Score(profile, job)

	application := &entities.Application{
		JobID:       jobID,
		CandidateID: profileID,
		CoverLetter: form.CoverLetter,
		State:       entities.StateApplied,

		ExperienceYearsAtApply: profile.CurrentExperienceYears(s.now()),
		SkillsAtApply:          profile.Skills,
		SalaryExpectation:      form.SalaryExpectation,
		LocationPreference:     form.LocationPreference,
		RemotePreference:       form.RemotePreference,

		MatchScore:           scores.Overall,
		SkillsMatchScore:     scores.Skills,
		ExperienceMatchScore: scores.Experience,
		LocationMatchScore:   scores.Location,
		SalaryMatchScore:     scores.Salary,
	}

	if application.SalaryExpectation == nil {
		application.SalaryExpectation = profile.PreferredSalaryMin
	}
	if application.LocationPreference == "" {
		application.LocationPreference = profile.PreferredLocations
	}
	if application.RemotePreference == "" {
		application.RemotePreference = profile.RemotePreference
	}

	if err := s.applications.Add(ctx, application); err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmittedCounter.Inc()
	s.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		ApplicationID: application.ID,
		JobID:         jobID,
		CandidateID:   profileID,
		MatchScore:    scores.Overall,
	})

	log.Infof("candidate %v applied to job %v with match score %v", profileID, jobID, scores.Overall)
	return application, nil
}

// Annotate recomputes the five score columns from the live profile and the
// job and persists them, overwriting whatever was cached there. The
// snapshot fields are untouched: the snapshot says what the candidate
// stated at apply time, the scores say how well they fit now.
func (s *ApplicationService) Annotate(ctx context.Context, applicationID int64) (*entities.Application, error) {

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(ctx, application.CandidateID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	scores := s.matcher.Score(profile, job)
	if err := s.applications.UpdateScores(ctx, application.ID, scores); err != nil {
		return nil, err
	}

	application.MatchScore = scores.Overall
	application.SkillsMatchScore = scores.Skills
	application.ExperienceMatchScore = scores.Experience
	application.LocationMatchScore = scores.Location
	application.SalaryMatchScore = scores.Salary
	return application, nil
}

func (s *ApplicationService) activeJob(ctx context.Context, jobID int64) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, apperrors.NotFoundf("job %d is no longer active", jobID)
	}
	return job, nil
}
