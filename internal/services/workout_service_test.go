package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/repository"
)

type stubWorkoutRepo struct {
	createResult *models.Workout
	createErr    error
	listResult   []models.Workout
	listErr      error
	statsResult  *repository.StatsRow
	statsErr     error

	lastCreate    repository.CreateWorkoutInput
	lastLimit     int
	lastRangeFrom string
	lastRangeTo   string
}

func (r *stubWorkoutRepo) Create(_ context.Context, input repository.CreateWorkoutInput) (*models.Workout, error) {
	r.lastCreate = input
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.createResult != nil {
		return r.createResult, nil
	}
	return &models.Workout{
		ID:              1,
		ExerciseName:    input.ExerciseName,
		Sets:            input.Sets,
		Reps:            input.Reps,
		Weight:          input.Weight,
		DurationMinutes: input.DurationMinutes,
		Date:            input.Date,
	}, nil
}

func (r *stubWorkoutRepo) ListRecent(_ context.Context, limit int) ([]models.Workout, error) {
	r.lastLimit = limit
	return r.listResult, r.listErr
}

func (r *stubWorkoutRepo) ListAll(_ context.Context) ([]models.Workout, error) {
	return r.listResult, r.listErr
}

func (r *stubWorkoutRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]models.Workout, error) {
	r.lastRangeFrom = startDate
	r.lastRangeTo = endDate
	return r.listResult, r.listErr
}

func (r *stubWorkoutRepo) Stats(_ context.Context) (*repository.StatsRow, error) {
	return r.statsResult, r.statsErr
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

func newTestWorkoutService(repo *stubWorkoutRepo) *WorkoutService {
	return &WorkoutService{workoutRepo: repo, now: fixedClock}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestLogWorkoutDefaultsEmptyDateToToday(t *testing.T) {
	repo := &stubWorkoutRepo{}
	service := newTestWorkoutService(repo)

	workout, err := service.LogWorkout(context.Background(), LogWorkoutInput{
		ExerciseName: "Bench Press",
	})
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if workout.Date != "2024-01-15" {
		t.Fatalf("expected today's date, got %q", workout.Date)
	}
	if repo.lastCreate.Date != "2024-01-15" {
		t.Fatalf("expected defaulted date in repo input, got %q", repo.lastCreate.Date)
	}
}

func TestLogWorkoutKeepsOptionalFieldsNil(t *testing.T) {
	repo := &stubWorkoutRepo{}
	service := newTestWorkoutService(repo)

	_, err := service.LogWorkout(context.Background(), LogWorkoutInput{
		ExerciseName: "Pull-ups",
		Sets:         intp(3),
		Date:         "2024-01-18",
	})
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	if repo.lastCreate.Sets == nil || *repo.lastCreate.Sets != 3 {
		t.Fatalf("expected sets 3, got %+v", repo.lastCreate.Sets)
	}
	if repo.lastCreate.Reps != nil {
		t.Fatalf("expected nil reps, got %d", *repo.lastCreate.Reps)
	}
	if repo.lastCreate.Weight != nil {
		t.Fatalf("expected nil weight, got %v", *repo.lastCreate.Weight)
	}
	if repo.lastCreate.DurationMinutes != nil {
		t.Fatalf("expected nil duration, got %d", *repo.lastCreate.DurationMinutes)
	}
}

func TestLogWorkoutTrimsExerciseName(t *testing.T) {
	repo := &stubWorkoutRepo{}
	service := newTestWorkoutService(repo)

	_, err := service.LogWorkout(context.Background(), LogWorkoutInput{
		ExerciseName: "  Squats  ",
		Date:         "2024-01-16",
	})
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if repo.lastCreate.ExerciseName != "Squats" {
		t.Fatalf("expected trimmed name, got %q", repo.lastCreate.ExerciseName)
	}
}

func TestLogWorkoutRejectsInvalidInput(t *testing.T) {
	service := newTestWorkoutService(&stubWorkoutRepo{})

	cases := []struct {
		name  string
		input LogWorkoutInput
		want  error
	}{
		{"empty name", LogWorkoutInput{ExerciseName: "   "}, ErrInvalidInput},
		{"negative sets", LogWorkoutInput{ExerciseName: "Squats", Sets: intp(-1)}, ErrInvalidInput},
		{"negative weight", LogWorkoutInput{ExerciseName: "Squats", Weight: floatp(-5)}, ErrInvalidInput},
		{"bad date", LogWorkoutInput{ExerciseName: "Squats", Date: "15/01/2024"}, ErrInvalidDate},
	}

	for _, tc := range cases {
		_, err := service.LogWorkout(context.Background(), tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRecentRejectsNonPositiveLimit(t *testing.T) {
	service := newTestWorkoutService(&stubWorkoutRepo{})

	_, err := service.Recent(context.Background(), 0)
	if !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestRecentPassesLimitThrough(t *testing.T) {
	repo := &stubWorkoutRepo{}
	service := newTestWorkoutService(repo)

	if _, err := service.Recent(context.Background(), 20); err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if repo.lastLimit != 20 {
		t.Fatalf("expected limit 20, got %d", repo.lastLimit)
	}
}

func TestRangeValidatesDates(t *testing.T) {
	service := newTestWorkoutService(&stubWorkoutRepo{})

	_, err := service.Range(context.Background(), "not-a-date", "2024-01-20")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	_, err = service.Range(context.Background(), "2024-01-20", "2024-01-10")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestStatsComputesWeeklyAverage(t *testing.T) {
	mostRecent := "2024-01-19"
	repo := &stubWorkoutRepo{
		statsResult: &repository.StatsRow{
			TotalWorkouts:        7,
			UniqueExercises:      4,
			TotalDurationMinutes: 180,
			MostRecentDate:       &mostRecent,
			DistinctDates:        3,
		},
	}
	service := newTestWorkoutService(repo)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalWorkouts != 7 || stats.UniqueExercises != 4 || stats.TotalDurationMinutes != 180 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.MostRecentWorkout == nil || *stats.MostRecentWorkout != "2024-01-19" {
		t.Fatalf("unexpected most recent: %+v", stats.MostRecentWorkout)
	}
	if stats.AverageWorkoutsPerWeek != 2.33 {
		t.Fatalf("expected 2.33, got %v", stats.AverageWorkoutsPerWeek)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	repo := &stubWorkoutRepo{statsResult: &repository.StatsRow{}}
	service := newTestWorkoutService(repo)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalWorkouts != 0 || stats.AverageWorkoutsPerWeek != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if stats.MostRecentWorkout != nil {
		t.Fatalf("expected nil most recent, got %q", *stats.MostRecentWorkout)
	}
}
