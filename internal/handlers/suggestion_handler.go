package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/services"
)

type SuggestionHandler struct {
	service suggestionApplicationService
}

type suggestionApplicationService interface {
	Suggest(ctx context.Context, input services.SuggestionInput) (*models.Suggestion, error)
}

func NewSuggestionHandler(service *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

type suggestionRequest struct {
	FitnessGoal string `json:"fitness_goal" validate:"required"`
	UserID      string `json:"user_id"`
}

func (h *SuggestionHandler) GetSuggestions(c *fiber.Ctx) error {
	var req suggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, services.ErrGoalRequired.Error())
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	suggestion, err := h.service.Suggest(c.Context(), services.SuggestionInput{
		FitnessGoal: req.FitnessGoal,
		UserID:      req.UserID,
	})
	if err != nil {
		return mapSuggestionError(c, err)
	}

	return c.JSON(suggestion)
}

func mapSuggestionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrGoalRequired):
		return detail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSuggestionsUnavailable):
		return detail(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return detail(c, fiber.StatusInternalServerError, "Error generating suggestion")
	}
}
