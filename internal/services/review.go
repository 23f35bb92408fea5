package services

import (
	"context"
	"time"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// ReviewService is the employer side of the engine: a ranked queue of
// pending applications per job and a one-shot triage decision per
// application.
type ReviewService struct {
	jobs         jobRepository
	applications applicationRepository
	now          func() time.Time
}

func NewReviewService(jobs jobRepository, applications applicationRepository) *ReviewService {
	return &ReviewService{
		jobs:         jobs,
		applications: applications,
		now:          time.Now,
	}
}

func (s *ReviewService) WithNow(now func() time.Time) *ReviewService {
	s.now = now
	return s
}

// ListForReview returns the job's applications still in the applied state,
// highest match score first.
func (s *ReviewService) ListForReview(ctx context.Context, jobID, reviewerID int64) ([]entities.Application, error) {

	if err := s.authorize(ctx, jobID, reviewerID); err != nil {
		return nil, err
	}
	return s.applications.PendingByJob(ctx, jobID)
}

// Triage transitions an application from applied to the given decision.
// The transition happens at most once: a second attempt, or the loser of a
// concurrent race, gets a conflict and the application stays as it was.
func (s *ReviewService) Triage(ctx context.Context, applicationID, reviewerID int64,
	decision string, notes string) (*entities.Application, error) {

	state, err := entities.ToTriageDecision(decision)
	if err != nil {
		return nil, apperrors.Validationf("triage decision %q", decision)
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, application.JobID, reviewerID); err != nil {
		return nil, err
	}

	transitioned, err := s.applications.Triage(ctx, applicationID, reviewerID, state, notes, s.now())
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, apperrors.Conflictf("application %d is no longer awaiting review", applicationID)
	}

	metrics.TriageCounter.WithLabelValues(string(state)).Inc()
	log.Infof("application %v triaged as %v by reviewer %v", applicationID, state, reviewerID)

	return s.applications.GetByID(ctx, applicationID)
}

func (s *ReviewService) authorize(ctx context.Context, jobID, reviewerID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Company.OwnerID != reviewerID {
		return apperrors.Unauthorizedf("reviewer %d does not own job %d", reviewerID, jobID)
	}
	return nil
}
