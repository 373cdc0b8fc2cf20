package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/repository"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("date must use YYYY-MM-DD format")
	ErrInvalidRange = errors.New("start date must not be after end date")
	ErrInvalidLimit = errors.New("limit must be at least 1")
)

type workoutStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutInput) (*models.Workout, error)
	ListRecent(ctx context.Context, limit int) ([]models.Workout, error)
	ListAll(ctx context.Context) ([]models.Workout, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.Workout, error)
	Stats(ctx context.Context) (*repository.StatsRow, error)
}

type WorkoutService struct {
	workoutRepo workoutStore
	now         func() time.Time
}

func NewWorkoutService(workoutRepo *repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

type LogWorkoutInput struct {
	ExerciseName    string
	Sets            *int
	Reps            *int
	Weight          *float64
	DurationMinutes *int
	Date            string
}

// LogWorkout validates and stores one workout. An empty date defaults to
// today; optional numeric fields stay nil all the way into storage.
func (s *WorkoutService) LogWorkout(
	ctx context.Context,
	input LogWorkoutInput,
) (*models.Workout, error) {
	exerciseName := strings.TrimSpace(input.ExerciseName)
	if exerciseName == "" {
		return nil, ErrInvalidInput
	}
	if hasNegative(input.Sets) || hasNegative(input.Reps) || hasNegative(input.DurationMinutes) {
		return nil, ErrInvalidInput
	}
	if input.Weight != nil && *input.Weight < 0 {
		return nil, ErrInvalidInput
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	return s.workoutRepo.Create(ctx, repository.CreateWorkoutInput{
		ExerciseName:    exerciseName,
		Sets:            input.Sets,
		Reps:            input.Reps,
		Weight:          input.Weight,
		DurationMinutes: input.DurationMinutes,
		Date:            date,
	})
}

func (s *WorkoutService) Recent(ctx context.Context, limit int) ([]models.Workout, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	return s.workoutRepo.ListRecent(ctx, limit)
}

func (s *WorkoutService) All(ctx context.Context) ([]models.Workout, error) {
	return s.workoutRepo.ListAll(ctx)
}

func (s *WorkoutService) Range(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]models.Workout, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return nil, ErrInvalidDate
	}
	if startDate > endDate {
		return nil, ErrInvalidRange
	}

	return s.workoutRepo.ListByDateRange(ctx, startDate, endDate)
}

// Stats recomputes dashboard statistics from the full table. The weekly
// average is total workouts over distinct workout dates, to 2 decimals.
func (s *WorkoutService) Stats(ctx context.Context) (*models.WorkoutStats, error) {
	row, err := s.workoutRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.WorkoutStats{
		TotalWorkouts:        row.TotalWorkouts,
		UniqueExercises:      row.UniqueExercises,
		TotalDurationMinutes: row.TotalDurationMinutes,
		MostRecentWorkout:    row.MostRecentDate,
	}

	days := row.DistinctDates
	if days < 1 {
		days = 1
	}
	stats.AverageWorkoutsPerWeek = math.Round(float64(row.TotalWorkouts)/float64(days)*100) / 100

	return stats, nil
}

func hasNegative(value *int) bool {
	return value != nil && *value < 0
}
