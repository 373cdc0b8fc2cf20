package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/services"
)

type WorkoutHandler struct {
	service workoutApplicationService
}

type workoutApplicationService interface {
	LogWorkout(ctx context.Context, input services.LogWorkoutInput) (*models.Workout, error)
	Recent(ctx context.Context, limit int) ([]models.Workout, error)
	All(ctx context.Context) ([]models.Workout, error)
	Range(ctx context.Context, startDate, endDate string) ([]models.Workout, error)
	Stats(ctx context.Context) (*models.WorkoutStats, error)
}

func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type logWorkoutRequest struct {
	ExerciseName string   `json:"exercise_name" validate:"required"`
	Sets         *int     `json:"sets" validate:"omitempty,gte=0"`
	Reps         *int     `json:"reps" validate:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gte=0"`
	Duration     *int     `json:"duration" validate:"omitempty,gte=0"`
	Date         string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type logWorkoutResponse struct {
	models.Workout
	Message  string `json:"message"`
	Exercise string `json:"exercise"`
}

func (h *WorkoutHandler) LogWorkout(c *fiber.Ctx) error {
	var req logWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, "exercise_name is required and numeric fields must not be negative")
	}

	workout, err := h.service.LogWorkout(c.Context(), services.LogWorkoutInput{
		ExerciseName:    req.ExerciseName,
		Sets:            req.Sets,
		Reps:            req.Reps,
		Weight:          req.Weight,
		DurationMinutes: req.Duration,
		Date:            req.Date,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(logWorkoutResponse{
		Workout:  *workout,
		Message:  "Workout logged successfully",
		Exercise: workout.ExerciseName,
	})
}

func (h *WorkoutHandler) GetRecent(c *fiber.Ctx) error {
	workouts, err := h.service.Recent(c.Context(), parseLimit(c))
	if err != nil {
		return mapWorkoutError(c, err)
	}
	return c.JSON(workouts)
}

func (h *WorkoutHandler) GetAll(c *fiber.Ctx) error {
	workouts, err := h.service.All(c.Context())
	if err != nil {
		return mapWorkoutError(c, err)
	}
	return c.JSON(workouts)
}

func (h *WorkoutHandler) GetByRange(c *fiber.Ctx) error {
	workouts, err := h.service.Range(c.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		return mapWorkoutError(c, err)
	}
	return c.JSON(workouts)
}

func (h *WorkoutHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return mapWorkoutError(c, err)
	}
	return c.JSON(stats)
}

func mapWorkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidLimit):
		return detail(c, fiber.StatusBadRequest, err.Error())
	default:
		return detail(c, fiber.StatusInternalServerError, "Failed to process workout request")
	}
}
