package api

import (
	"strconv"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/careerhub/jobmatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

type submitApplicationRequest struct {
	ProfileID          int64    `json:"profile_id" validate:"required"`
	CoverLetter        string   `json:"cover_letter"`
	SalaryExpectation  *float64 `json:"salary_expectation" validate:"omitempty,gt=0"`
	LocationPreference string   `json:"location_preference"`
	RemotePreference   string   `json:"remote_preference" validate:"omitempty,oneof=on_site remote hybrid flexible"`
}

type triageRequest struct {
	ReviewerID int64  `json:"reviewer_id" validate:"required"`
	Decision   string `json:"decision" validate:"required,oneof=accepted rejected maybe"`
	Notes      string `json:"notes"`
}

func (s *Server) getRecommendations(c *fiber.Ctx) error {

	profileID, err := pathID(c, "profileID")
	if err != nil {
		return err
	}

	limit := s.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return apperrors.Validationf("limit %q is not a number", raw)
		}
	}

	recommendations, err := s.recommender.Recommend(c.Context(), profileID, limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"recommendations": recommendations})
}

func (s *Server) getApplicationPrefill(c *fiber.Ctx) error {

	profileID, err := pathID(c, "profileID")
	if err != nil {
		return err
	}

	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	prefill, err := s.applications.Prefill(c.Context(), profileID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(prefill)
}

func (s *Server) submitApplication(c *fiber.Ctx) error {

	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	var request submitApplicationRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validationf("malformed request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return apperrors.Validationf("%v", err)
	}

	application, err := s.applications.Submit(c.Context(), request.ProfileID, jobID,
		services.ApplicationForm{
			CoverLetter:        request.CoverLetter,
			SalaryExpectation:  request.SalaryExpectation,
			LocationPreference: request.LocationPreference,
			RemotePreference:   entities.RemotePreference(request.RemotePreference),
		})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

func (s *Server) listApplicationsForReview(c *fiber.Ctx) error {

	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	reviewerID, err := strconv.ParseInt(c.Query("reviewer_id"), 10, 64)
	if err != nil {
		return apperrors.Validationf("reviewer_id is required and must be a number")
	}

	applications, err := s.review.ListForReview(c.Context(), jobID, reviewerID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"applications": applications})
}

func (s *Server) triageApplication(c *fiber.Ctx) error {

	applicationID, err := pathID(c, "applicationID")
	if err != nil {
		return err
	}

	var request triageRequest
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Validationf("malformed request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return apperrors.Validationf("%v", err)
	}

	application, err := s.review.Triage(c.Context(), applicationID, request.ReviewerID,
		request.Decision, request.Notes)
	if err != nil {
		return err
	}

	return c.JSON(application)
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperrors.Validationf("%s must be a number", name)
	}
	return id, nil
}
