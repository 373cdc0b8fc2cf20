package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/llm"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
)

// Naive ISO timestamp, no zone suffix.
const generatedAtLayout = "2006-01-02T15:04:05"

const historyWindow = 5

var (
	ErrGoalRequired           = errors.New("fitness_goal is required")
	ErrSuggestionsUnavailable = errors.New("suggestion service is not configured")
)

type chatModel interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type recentWorkoutReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.Workout, error)
}

type SuggestionService struct {
	workoutRepo recentWorkoutReader
	model       chatModel
	now         func() time.Time
}

// NewSuggestionService wires the LLM-backed suggestion flow. model may be nil
// when no API key is configured; requests then fail with
// ErrSuggestionsUnavailable.
func NewSuggestionService(workoutRepo recentWorkoutReader, model chatModel) *SuggestionService {
	return &SuggestionService{
		workoutRepo: workoutRepo,
		model:       model,
		now:         time.Now,
	}
}

type SuggestionInput struct {
	FitnessGoal string
	UserID      string
}

// Suggest builds a goal-specific prompt from the last few workouts and asks
// the model for a plan. UserID is a single hardcoded pseudo-user for now and
// only shapes the input, not the history lookup.
func (s *SuggestionService) Suggest(
	ctx context.Context,
	input SuggestionInput,
) (*models.Suggestion, error) {
	goal := strings.TrimSpace(input.FitnessGoal)
	if goal == "" {
		return nil, ErrGoalRequired
	}
	if s.model == nil {
		return nil, ErrSuggestionsUnavailable
	}

	recent, err := s.workoutRepo.ListRecent(ctx, historyWindow)
	if err != nil {
		return nil, err
	}

	now := s.now()
	userPrompt, err := llm.BuildPrompt(goal, now.Format(dateLayout), llm.FormatHistory(recent))
	if err != nil {
		return nil, err
	}

	suggestion, err := s.model.Complete(ctx, llm.SystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return &models.Suggestion{
		Suggestion:          suggestion,
		FitnessGoal:         goal,
		GeneratedAt:         now.Format(generatedAtLayout),
		WorkoutHistoryCount: len(recent),
	}, nil
}
