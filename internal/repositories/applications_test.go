package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestDb(t *testing.T) *DbContext {

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	assert.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func Test_Add_RejectsDuplicateApplication(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)
	ctx := context.Background()

	first := &entities.Application{JobID: 1, CandidateID: 2, State: entities.StateApplied}
	assert.NoError(t, repo.Add(ctx, first))

	duplicate := &entities.Application{JobID: 1, CandidateID: 2, State: entities.StateApplied}
	err := repo.Add(ctx, duplicate)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// a different candidate on the same job is fine
	other := &entities.Application{JobID: 1, CandidateID: 3, State: entities.StateApplied}
	assert.NoError(t, repo.Add(ctx, other))
}

func Test_Triage_IsCompareAndSet(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)
	ctx := context.Background()

	application := &entities.Application{JobID: 1, CandidateID: 2, State: entities.StateApplied}
	assert.NoError(t, repo.Add(ctx, application))

	now := time.Now()

	transitioned, err := repo.Triage(ctx, application.ID, 10, entities.StateAccepted, "strong fit", now)
	assert.NoError(t, err)
	assert.True(t, transitioned)

	// the second reviewer loses the race: the guard no longer matches
	transitioned, err = repo.Triage(ctx, application.ID, 11, entities.StateRejected, "", now.Add(time.Minute))
	assert.NoError(t, err)
	assert.False(t, transitioned)

	stored, err := repo.GetByID(ctx, application.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.StateAccepted, stored.State)
	assert.Equal(t, int64(10), *stored.ReviewedBy)
	assert.Equal(t, "strong fit", stored.ReviewNotes)
}

func Test_PendingByJob_OrdersByMatchScoreDescending(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)
	ctx := context.Background()

	low := &entities.Application{JobID: 1, CandidateID: 2, State: entities.StateApplied, MatchScore: 40.5}
	high := &entities.Application{JobID: 1, CandidateID: 3, State: entities.StateApplied, MatchScore: 91.2}
	mid := &entities.Application{JobID: 1, CandidateID: 4, State: entities.StateApplied, MatchScore: 77.0}
	otherJob := &entities.Application{JobID: 2, CandidateID: 2, State: entities.StateApplied, MatchScore: 99.9}

	for _, application := range []*entities.Application{low, high, mid, otherJob} {
		assert.NoError(t, repo.Add(ctx, application))
	}

	triaged := &entities.Application{JobID: 1, CandidateID: 5, State: entities.StateApplied, MatchScore: 95.0}
	assert.NoError(t, repo.Add(ctx, triaged))
	_, err := repo.Triage(ctx, triaged.ID, 10, entities.StateMaybe, "", time.Now())
	assert.NoError(t, err)

	pending, err := repo.PendingByJob(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, pending, 3)
	assert.Equal(t, int64(3), pending[0].CandidateID)
	assert.Equal(t, int64(4), pending[1].CandidateID)
	assert.Equal(t, int64(2), pending[2].CandidateID)
}

func Test_UpdateScores_OverwritesAllFiveColumns(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)
	ctx := context.Background()

	application := &entities.Application{
		JobID: 1, CandidateID: 2, State: entities.StateApplied,
		MatchScore: 10, SkillsMatchScore: 10, ExperienceMatchScore: 10,
		LocationMatchScore: 10, SalaryMatchScore: 10,
	}
	assert.NoError(t, repo.Add(ctx, application))

	scores := matching.MatchResult{Overall: 87.5, Skills: 100, Experience: 80, Location: 70, Salary: 90}
	assert.NoError(t, repo.UpdateScores(ctx, application.ID, scores))

	stored, err := repo.GetByID(ctx, application.ID)
	assert.NoError(t, err)
	assert.Equal(t, 87.5, stored.MatchScore)
	assert.Equal(t, 100.0, stored.SkillsMatchScore)
	assert.Equal(t, 80.0, stored.ExperienceMatchScore)
	assert.Equal(t, 70.0, stored.LocationMatchScore)
	assert.Equal(t, 90.0, stored.SalaryMatchScore)
}

func Test_AppliedJobIDs(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, &entities.Application{JobID: 1, CandidateID: 2}))
	assert.NoError(t, repo.Add(ctx, &entities.Application{JobID: 3, CandidateID: 2}))
	assert.NoError(t, repo.Add(ctx, &entities.Application{JobID: 4, CandidateID: 9}))

	ids, err := repo.AppliedJobIDs(ctx, 2)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 3}, ids)
}

func Test_GetByID_NotFound(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewApplicationRepository(dbCtx.DB)

	_, err := repo.GetByID(context.Background(), 12345)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
