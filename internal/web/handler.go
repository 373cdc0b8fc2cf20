package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/services"
)

const (
	dashboardRecentLimit = 5
	historyRecentLimit   = 20
	dateLayout           = "2006-01-02"
)

var fitnessGoals = []string{
	"strength building",
	"muscle building",
	"endurance",
	"cardio fitness",
	"fat loss",
	"general fitness",
}

type workoutReader interface {
	Recent(ctx context.Context, limit int) ([]models.Workout, error)
	All(ctx context.Context) ([]models.Workout, error)
	Stats(ctx context.Context) (*models.WorkoutStats, error)
}

type workoutLogger interface {
	LogWorkout(ctx context.Context, input services.LogWorkoutInput) (*models.Workout, error)
}

type suggester interface {
	Suggest(ctx context.Context, input services.SuggestionInput) (*models.Suggestion, error)
}

type workoutSection interface {
	workoutReader
	workoutLogger
}

// Handler serves the server-rendered UI: four mutually exclusive sections,
// each its own route, sharing one layout.
type Handler struct {
	workouts    workoutSection
	suggestions suggester
	templates   *templates
	now         func() time.Time
}

func NewHandler(
	workoutService *services.WorkoutService,
	suggestionService *services.SuggestionService,
) (*Handler, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		workouts:    workoutService,
		suggestions: suggestionService,
		templates:   tmpl,
		now:         time.Now,
	}, nil
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusFound)
	})
	app.Get("/dashboard", h.Dashboard)
	app.Get("/log", h.LogForm)
	app.Post("/log", h.SubmitWorkout)
	app.Get("/history", h.History)
	app.Get("/suggestions", h.Suggestions)
	app.Post("/suggestions", h.RequestSuggestion)
}

// Dashboard loads stats and the recent list concurrently; each panel renders
// or fails on its own, so a failing query never blanks the other panel.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	ctx := c.Context()

	var (
		stats     *models.WorkoutStats
		statsErr  error
		recent    []models.Workout
		recentErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = h.workouts.Stats(ctx)
	}()
	go func() {
		defer wg.Done()
		recent, recentErr = h.workouts.Recent(ctx, dashboardRecentLimit)
	}()
	wg.Wait()

	view := DashboardView{
		Page:      h.page(c, "Dashboard", "dashboard"),
		Stats:     stats,
		StatsErr:  statsErr != nil,
		Recent:    recent,
		RecentErr: recentErr != nil,
	}
	return h.render(c, "dashboard.html", view)
}

func (h *Handler) LogForm(c *fiber.Ctx) error {
	view := LogFormView{
		Page:  h.page(c, "Log Workout", "log"),
		Today: h.now().Format(dateLayout),
	}
	return h.render(c, "log.html", view)
}

// SubmitWorkout coerces the form fields, logs the workout, and redirects back
// to a fresh form so a success always shows today's date and empty fields.
func (h *Handler) SubmitWorkout(c *fiber.Ctx) error {
	sets, err := formInt(c, "sets")
	if err != nil {
		return redirectWithNotice(c, "/log", "Sets must be a whole number", "error")
	}
	reps, err := formInt(c, "reps")
	if err != nil {
		return redirectWithNotice(c, "/log", "Reps must be a whole number", "error")
	}
	duration, err := formInt(c, "duration")
	if err != nil {
		return redirectWithNotice(c, "/log", "Duration must be a whole number", "error")
	}
	weight, err := formFloat(c, "weight")
	if err != nil {
		return redirectWithNotice(c, "/log", "Weight must be a number", "error")
	}

	workout, err := h.workouts.LogWorkout(c.Context(), services.LogWorkoutInput{
		ExerciseName:    c.FormValue("exercise_name"),
		Sets:            sets,
		Reps:            reps,
		Weight:          weight,
		DurationMinutes: duration,
		Date:            c.FormValue("date"),
	})
	if err != nil {
		return redirectWithNotice(c, "/log", noticeForError(err), "error")
	}

	notice := fmt.Sprintf("Logged %s for %s", workout.ExerciseName, workout.Date)
	return redirectWithNotice(c, "/log", notice, "success")
}

func (h *Handler) History(c *fiber.Ctx) error {
	showAll := c.Query("all") == "1"

	var (
		workouts []models.Workout
		err      error
	)
	if showAll {
		workouts, err = h.workouts.All(c.Context())
	} else {
		workouts, err = h.workouts.Recent(c.Context(), historyRecentLimit)
	}
	if err != nil {
		view := HistoryView{Page: h.page(c, "History", "history")}
		view.Notice = "Could not load workout history"
		view.NoticeKind = "error"
		return h.render(c, "history.html", view)
	}

	view := HistoryView{
		Page:    h.page(c, "History", "history"),
		Groups:  GroupByDate(workouts),
		ShowAll: showAll,
	}
	if showAll && view.Notice == "" {
		view.Notice = fmt.Sprintf("Loaded %d workouts", len(workouts))
		view.NoticeKind = "success"
	}
	return h.render(c, "history.html", view)
}

// Suggestions renders the goal picker. Navigating here always clears any
// prior result.
func (h *Handler) Suggestions(c *fiber.Ctx) error {
	view := SuggestionsView{
		Page:  h.page(c, "AI Suggestions", "suggestions"),
		Goals: fitnessGoals,
	}
	return h.render(c, "suggestions.html", view)
}

func (h *Handler) RequestSuggestion(c *fiber.Ctx) error {
	goal := strings.TrimSpace(c.FormValue("fitness_goal"))
	if goal == "" {
		return redirectWithNotice(c, "/suggestions", "Please select a fitness goal first", "error")
	}

	result, err := h.suggestions.Suggest(c.Context(), services.SuggestionInput{
		FitnessGoal: goal,
		UserID:      "default",
	})
	if err != nil {
		return redirectWithNotice(c, "/suggestions", noticeForError(err), "error")
	}

	view := SuggestionsView{
		Page:   h.page(c, "AI Suggestions", "suggestions"),
		Goals:  fitnessGoals,
		Result: result,
	}
	return h.render(c, "suggestions.html", view)
}

func (h *Handler) page(c *fiber.Ctx, title, active string) Page {
	kind := c.Query("kind")
	if kind != "error" {
		kind = "success"
	}
	return Page{
		Title:      title,
		Active:     active,
		Notice:     c.Query("notice"),
		NoticeKind: kind,
	}
}

func (h *Handler) render(c *fiber.Ctx, name string, data any) error {
	var body bytes.Buffer
	if err := h.templates.render(&body, name, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(body.Bytes())
}

func redirectWithNotice(c *fiber.Ctx, path, notice, kind string) error {
	query := url.Values{}
	query.Set("notice", notice)
	query.Set("kind", kind)
	return c.Redirect(path+"?"+query.Encode(), fiber.StatusSeeOther)
}

func noticeForError(err error) string {
	switch {
	case err == nil:
		return ""
	case isKnown(err):
		return capitalize(err.Error())
	default:
		return "Something went wrong. Please try again."
	}
}

func isKnown(err error) bool {
	for _, known := range []error{
		services.ErrInvalidInput,
		services.ErrInvalidDate,
		services.ErrInvalidRange,
		services.ErrInvalidLimit,
		services.ErrGoalRequired,
		services.ErrSuggestionsUnavailable,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// formInt reads an optional numeric form field; empty means absent, not zero.
func formInt(c *fiber.Ctx, field string) (*int, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func formFloat(c *fiber.Ctx, field string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
