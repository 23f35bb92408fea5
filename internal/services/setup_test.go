package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/careerhub/jobmatch/internal/repositories"
	"github.com/stretchr/testify/assert"
)

const reviewerID int64 = 77

type testEnv struct {
	profiles     *repositories.Profiles
	jobs         *repositories.Jobs
	applications *repositories.Applications
	matcher      *matching.Matcher
	bus          EventBus.Bus
	service      *ApplicationService
	recommender  *Recommender
	review       *ReviewService
}

var testNow = func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {

	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	assert.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	env := &testEnv{
		profiles:     repositories.NewProfileRepository(dbCtx.DB),
		jobs:         repositories.NewJobRepository(dbCtx.DB),
		applications: repositories.NewApplicationRepository(dbCtx.DB),
		matcher:      matching.NewMatcher().WithNow(testNow),
		bus:          EventBus.New(),
	}
	env.service = NewApplicationService(env.matcher, env.bus, env.profiles,
		env.jobs, env.applications).WithNow(testNow)
	env.recommender = NewRecommender(env.matcher, env.profiles, env.jobs, env.applications)
	env.review = NewReviewService(env.jobs, env.applications).WithNow(testNow)

	return env
}

func (env *testEnv) seedCompany(t *testing.T) *entities.Company {
	company := &entities.Company{Name: "Acme", OwnerID: reviewerID}
	assert.NoError(t, env.jobs.AddCompany(context.Background(), company))
	return company
}

func (env *testEnv) seedJob(t *testing.T, companyID int64, mutate func(*entities.Job)) *entities.Job {
	salaryMin, salaryMax := 800.0, 1200.0
	job := &entities.Job{
		CompanyID:       companyID,
		Title:           "Backend developer",
		Requirements:    "Looking for Python and Django developer",
		ExperienceLevel: entities.MidLevel,
		Location:        "Remote",
		IsRemote:        true,
		IsActive:        true,
		SalaryMin:       &salaryMin,
		SalaryMax:       &salaryMax,
	}
	if mutate != nil {
		mutate(job)
	}
	assert.NoError(t, env.jobs.Add(context.Background(), job))
	return job
}

func (env *testEnv) seedProfile(t *testing.T, mutate func(*entities.Profile)) *entities.Profile {
	salaryMin := 900.0
	profile := &entities.Profile{
		Name:               "Jordan",
		Skills:             "python,django",
		ExperienceYears:    3,
		PreferredLocations: "Remote",
		PreferredSalaryMin: &salaryMin,
		RemotePreference:   entities.RemoteOnly,
	}
	if mutate != nil {
		mutate(profile)
	}
	assert.NoError(t, env.profiles.Add(context.Background(), profile))
	return profile
}
