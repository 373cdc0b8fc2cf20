package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/services"
)

type stubWorkoutService struct {
	logResult    *models.Workout
	logErr       error
	recentResult []models.Workout
	recentErr    error
	allResult    []models.Workout
	allErr       error
	rangeResult  []models.Workout
	rangeErr     error
	statsResult  *models.WorkoutStats
	statsErr     error

	lastLogInput services.LogWorkoutInput
	lastLimit    int
	lastStart    string
	lastEnd      string
}

func (s *stubWorkoutService) LogWorkout(_ context.Context, input services.LogWorkoutInput) (*models.Workout, error) {
	s.lastLogInput = input
	return s.logResult, s.logErr
}

func (s *stubWorkoutService) Recent(_ context.Context, limit int) ([]models.Workout, error) {
	s.lastLimit = limit
	return s.recentResult, s.recentErr
}

func (s *stubWorkoutService) All(_ context.Context) ([]models.Workout, error) {
	return s.allResult, s.allErr
}

func (s *stubWorkoutService) Range(_ context.Context, startDate, endDate string) ([]models.Workout, error) {
	s.lastStart = startDate
	s.lastEnd = endDate
	return s.rangeResult, s.rangeErr
}

func (s *stubWorkoutService) Stats(_ context.Context) (*models.WorkoutStats, error) {
	return s.statsResult, s.statsErr
}

func newWorkoutTestApp(service *stubWorkoutService) *fiber.App {
	handler := &WorkoutHandler{service: service}

	app := fiber.New()
	app.Post("/log_workout", handler.LogWorkout)
	app.Get("/workouts/recent", handler.GetRecent)
	app.Get("/workouts/all", handler.GetAll)
	app.Get("/workouts/range", handler.GetByRange)
	app.Get("/workouts/stats", handler.GetStats)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	return payload.Detail
}

func TestLogWorkoutReturnsConfirmation(t *testing.T) {
	sets := 3
	service := &stubWorkoutService{
		logResult: &models.Workout{ID: 1, ExerciseName: "Bench Press", Sets: &sets, Date: "2024-01-15"},
	}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/log_workout", `{
		"exercise_name": "Bench Press",
		"sets": 3,
		"reps": 10,
		"weight": 135.0,
		"duration": null,
		"date": "2024-01-15"
	}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var payload struct {
		Message      string `json:"message"`
		Exercise     string `json:"exercise"`
		ExerciseName string `json:"exercise_name"`
		Date         string `json:"date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Exercise != "Bench Press" {
		t.Fatalf("expected exercise confirmation, got %q", payload.Exercise)
	}
	if payload.Message == "" {
		t.Fatalf("expected success message")
	}
	if payload.Date != "2024-01-15" {
		t.Fatalf("expected date echoed, got %q", payload.Date)
	}

	if service.lastLogInput.DurationMinutes != nil {
		t.Fatalf("expected null duration to stay nil, got %d", *service.lastLogInput.DurationMinutes)
	}
	if service.lastLogInput.Sets == nil || *service.lastLogInput.Sets != 3 {
		t.Fatalf("unexpected sets input: %+v", service.lastLogInput.Sets)
	}
}

func TestLogWorkoutRejectsMissingExerciseName(t *testing.T) {
	service := &stubWorkoutService{}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/log_workout", `{"sets": 3}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail == "" {
		t.Fatalf("expected detail message")
	}
}

func TestLogWorkoutMapsServiceErrors(t *testing.T) {
	service := &stubWorkoutService{logErr: services.ErrInvalidDate}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/log_workout", `{"exercise_name": "Squats"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); !strings.Contains(detail, "YYYY-MM-DD") {
		t.Fatalf("expected date detail, got %q", detail)
	}
}

func TestLogWorkoutInternalErrorHidesCause(t *testing.T) {
	service := &stubWorkoutService{logErr: errors.New("connection refused")}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/log_workout", `{"exercise_name": "Squats"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); strings.Contains(detail, "connection refused") {
		t.Fatalf("internal error leaked: %q", detail)
	}
}

func TestGetRecentDefaultsLimit(t *testing.T) {
	service := &stubWorkoutService{recentResult: []models.Workout{}}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workouts/recent", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastLimit != 5 {
		t.Fatalf("expected default limit 5, got %d", service.lastLimit)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestGetRecentCapsLimit(t *testing.T) {
	service := &stubWorkoutService{recentResult: []models.Workout{}}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workouts/recent?limit=5000", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if service.lastLimit != 100 {
		t.Fatalf("expected capped limit 100, got %d", service.lastLimit)
	}
}

func TestGetByRangePassesDates(t *testing.T) {
	service := &stubWorkoutService{rangeResult: []models.Workout{}}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workouts/range?start=2024-01-10&end=2024-01-20", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if service.lastStart != "2024-01-10" || service.lastEnd != "2024-01-20" {
		t.Fatalf("unexpected range: %q..%q", service.lastStart, service.lastEnd)
	}
}

func TestGetStatsReturnsPayload(t *testing.T) {
	mostRecent := "2024-01-19"
	service := &stubWorkoutService{
		statsResult: &models.WorkoutStats{
			TotalWorkouts:          5,
			UniqueExercises:        5,
			TotalDurationMinutes:   0,
			MostRecentWorkout:      &mostRecent,
			AverageWorkoutsPerWeek: 1,
		},
	}
	app := newWorkoutTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workouts/stats", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var stats models.WorkoutStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalWorkouts != 5 || stats.MostRecentWorkout == nil || *stats.MostRecentWorkout != "2024-01-19" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
