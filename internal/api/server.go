// Package api exposes the scoring engine over HTTP. Authentication is an
// external collaborator: callers identify themselves with explicit
// profile and reviewer ids.
package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/config"
	"github.com/careerhub/jobmatch/internal/logger"
	"github.com/careerhub/jobmatch/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Server struct {
	app          *fiber.App
	recommender  *services.Recommender
	applications *services.ApplicationService
	review       *services.ReviewService
	validate     *validator.Validate
	defaultLimit int
}

func NewServer(cfg config.ServerConfig, defaultLimit int, recommender *services.Recommender,
	applications *services.ApplicationService, review *services.ReviewService) *Server {

	if defaultLimit == 0 {
		defaultLimit = 10
	}

	s := &Server{
		recommender:  recommender,
		applications: applications,
		review:       review,
		validate:     validator.New(),
		defaultLimit: defaultLimit,
	}

	app := fiber.New(fiber.Config{
		AppName:               "jobmatch",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(rateLimiter(cfg.RequestsPerSecond, cfg.RequestBurst))

	v1 := app.Group("/api/v1")
	v1.Get("/profiles/:profileID/recommendations", s.getRecommendations)
	v1.Get("/profiles/:profileID/jobs/:jobID/prefill", s.getApplicationPrefill)
	v1.Post("/jobs/:jobID/applications", s.submitApplication)
	v1.Get("/jobs/:jobID/applications", s.listApplicationsForReview)
	v1.Post("/applications/:applicationID/triage", s.triageApplication)

	s.app = app
	return s
}

func (s *Server) Run(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Stop() error {
	return s.app.Shutdown()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		code = fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		code = fiber.StatusConflict
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		} else {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).
				Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		}
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debugf("%s %s -> %d (%v)", c.Method(), c.Path(),
			c.Response().StatusCode(), time.Since(start))
		return err
	}
}

func rateLimiter(perSecond float64, burst int) fiber.Handler {
	if perSecond <= 0 {
		perSecond = 20
	}
	if burst <= 0 {
		burst = int(perSecond) * 2
	}

	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(fiber.Map{"error": "too many requests"})
		}
		return c.Next()
	}
}
