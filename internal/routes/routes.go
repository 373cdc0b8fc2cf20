package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/config"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/handlers"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/llm"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/repository"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/services"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/web"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	workoutRepo := repository.NewWorkoutRepository(db)
	workoutService := services.NewWorkoutService(workoutRepo)

	suggestionService := services.NewSuggestionService(workoutRepo, nil)
	if cfg.SuggestionsEnabled() {
		model := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITemperature)
		suggestionService = services.NewSuggestionService(workoutRepo, model)
	}

	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	app.Post("/log_workout", workoutHandler.LogWorkout)
	app.Post("/get_suggestions", suggestionHandler.GetSuggestions)

	workouts := app.Group("/workouts")
	workouts.Get("/recent", workoutHandler.GetRecent)
	workouts.Get("/all", workoutHandler.GetAll)
	workouts.Get("/range", workoutHandler.GetByRange)
	workouts.Get("/stats", workoutHandler.GetStats)

	webHandler, err := web.NewHandler(workoutService, suggestionService)
	if err != nil {
		return err
	}
	webHandler.Register(app)

	return nil
}
