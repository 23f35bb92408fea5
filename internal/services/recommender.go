package services

import (
	"context"
	"sort"
	"time"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/careerhub/jobmatch/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type Recommendation struct {
	Job    entities.Job         `json:"job"`
	Scores matching.MatchResult `json:"scores"`
}

type Recommender struct {
	matcher      *matching.Matcher
	profiles     profileRepository
	jobs         jobRepository
	applications applicationRepository
}

func NewRecommender(matcher *matching.Matcher, profiles profileRepository,
	jobs jobRepository, applications applicationRepository) *Recommender {

	return &Recommender{
		matcher:      matcher,
		profiles:     profiles,
		jobs:         jobs,
		applications: applications,
	}
}

// Recommend ranks all open jobs for a profile, skipping jobs the candidate
// already applied to, and returns the top results by overall score. Equal
// scores keep storage order: the sort is stable and ties are not broken
// further.
func (r *Recommender) Recommend(ctx context.Context, profileID int64, limit int) ([]Recommendation, error) {

	if limit <= 0 {
		return nil, apperrors.Validationf("limit must be positive, got %d", limit)
	}

	profile, err := r.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	jobs, err := r.jobs.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	appliedIDs, err := r.applications.AppliedJobIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}

	applied := make(map[int64]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = struct{}{}
	}

	start := time.Now()

	recommendations := make([]Recommendation, 0, len(jobs))
	for _, job := range jobs {
		if _, alreadyApplied := applied[job.ID]; alreadyApplied {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			Job:    job,
			Scores: r.matcher.Score(profile, &job),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Scores.Overall > recommendations[j].Scores.Overall
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendationsCounter.Inc()
	log.Debugf("scored %v jobs for profile %v", len(jobs), profileID)

	return recommendations, nil
}
