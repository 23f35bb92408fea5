package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/careerhub/jobmatch/internal/api"
	"github.com/careerhub/jobmatch/internal/config"
	"github.com/careerhub/jobmatch/internal/logger"
	"github.com/careerhub/jobmatch/internal/matching"
	"github.com/careerhub/jobmatch/internal/metrics"
	"github.com/careerhub/jobmatch/internal/repositories"
	"github.com/careerhub/jobmatch/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	profiles := repositories.NewProfileRepository(dbContext.DB)
	jobs := repositories.NewJobRepository(dbContext.DB)
	applications := repositories.NewApplicationRepository(dbContext.DB)

	bus := EventBus.New()
	matcher := matching.NewMatcher()

	applicationService := services.NewApplicationService(matcher, bus, profiles, jobs, applications)
	recommender := services.NewRecommender(matcher, profiles, jobs, applications)
	review := services.NewReviewService(jobs, applications)

	rescorer, err := services.NewRescorer(bus, applicationService, applications, cfg.Engine.RescoreCron)
	if err != nil {
		log.Fatalf("can't create rescorer: %v", err)
	}
	defer rescorer.Stop()

	server := api.NewServer(cfg.Server, cfg.Engine.DefaultLimit, recommender, applicationService, review)
	go func() {
		if err := server.Run(cfg.Server.Port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	if err := server.Stop(); err != nil {
		log.Errorf("failed to stop server: %v", err)
	}
	log.Info("Services stopped.")
}
