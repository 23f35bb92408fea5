package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/events"
	"github.com/careerhub/jobmatch/internal/logger"
	"github.com/careerhub/jobmatch/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type applicationAnnotator interface {
	Annotate(ctx context.Context, applicationID int64) (*entities.Application, error)
}

// Rescorer keeps the denormalized score columns of pending applications in
// step with live profiles: once a night for everything still awaiting
// review, and immediately for a candidate whose profile changed.
type Rescorer struct {
	annotator    applicationAnnotator
	applications applicationRepository
	cron         *cron.Cron
}

func NewRescorer(bus EventBus.Bus, annotator applicationAnnotator,
	applications applicationRepository, schedule string) (*Rescorer, error) {

	if schedule == "" {
		schedule = "0 3 * * *"
	}

	r := &Rescorer{
		annotator:    annotator,
		applications: applications,
		cron:         cron.New(),
	}

	if err := bus.Subscribe(events.ProfileUpdatedTopic, r.onProfileUpdated); err != nil {
		return nil, err
	}

	if _, err := r.cron.AddFunc(schedule, r.rescoreAll); err != nil {
		return nil, err
	}

	r.cron.Start()
	log.Infof("application rescorer started, schedule: %s", schedule)
	return r, nil
}

func (r *Rescorer) Stop() {
	r.cron.Stop()
}

func (r *Rescorer) onProfileUpdated(event events.ProfileUpdated) {

	pending, err := r.applications.PendingByCandidate(context.Background(), event.ProfileID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get pending applications for profile %v: %v", event.ProfileID, err)
		return
	}

	r.rescore(pending)
	log.Infof("rescored %v pending applications after profile %v update", len(pending), event.ProfileID)
}

func (r *Rescorer) rescoreAll() {

	pending, err := r.applications.PendingAll(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get pending applications: %v", err)
		return
	}

	r.rescore(pending)
	log.Infof("nightly rescore handled %v pending applications", len(pending))
}

func (r *Rescorer) rescore(pending []entities.Application) {
	for _, application := range pending {
		if _, err := r.annotator.Annotate(context.Background(), application.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeScoring).
				Errorf("failed to rescore application %v: %v", application.ID, err)
			continue
		}
		metrics.RescoredCounter.Inc()
	}
}
