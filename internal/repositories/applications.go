package repositories

import (
	"context"
	"time"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Add inserts the application, rejecting a duplicate (job, candidate) pair
// atomically: the insert either lands or hits the unique index and affects
// no rows. There is no read-then-write window.
func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "candidate_id"}},
			DoNothing: true,
		}).
		Create(application)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.Conflictf("candidate %d already applied to job %d",
			application.CandidateID, application.JobID)
	}
	return nil
}

func (repo *Applications) GetByID(ctx context.Context, id int64) (*entities.Application, error) {

	var application entities.Application
	if err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("application %d", id)
		}
		return nil, err
	}
	return &application, nil
}

// AppliedJobIDs returns the ids of jobs the candidate has already applied
// to, regardless of review state.
func (repo *Applications) AppliedJobIDs(ctx context.Context, candidateID int64) ([]int64, error) {

	var ids []int64
	err := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("candidate_id = ?", candidateID).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// PendingByJob lists the review queue for a job: applications still in the
// applied state, best match first.
func (repo *Applications) PendingByJob(ctx context.Context, jobID int64) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Where("job_id = ? AND state = ?", jobID, entities.StateApplied).
		Order("match_score DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) PendingByCandidate(ctx context.Context, candidateID int64) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Where("candidate_id = ? AND state = ?", candidateID, entities.StateApplied).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) PendingAll(ctx context.Context) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Where("state = ?", entities.StateApplied).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) UpdateScores(ctx context.Context, id int64, scores matching.MatchResult) error {
	return repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"match_score":            scores.Overall,
			"skills_match_score":     scores.Skills,
			"experience_match_score": scores.Experience,
			"location_match_score":   scores.Location,
			"salary_match_score":     scores.Salary,
		}).Error
}

// Triage moves an application out of the applied state. The update is a
// compare-and-set on the current state: of two concurrent reviewers only
// one write matches the guard, the other sees zero affected rows.
func (repo *Applications) Triage(ctx context.Context, id int64, reviewerID int64,
	decision entities.ReviewState, notes string, at time.Time) (bool, error) {

	result := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("id = ? AND state = ?", id, entities.StateApplied).
		Updates(map[string]any{
			"state":        decision,
			"reviewed_by":  reviewerID,
			"reviewed_at":  at,
			"review_notes": notes,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
