package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/config"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/database"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/middleware"
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if !cfg.SuggestionsEnabled() {
		log.Println("OPENAI_API_KEY not set; suggestion endpoints will report unavailable")
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format("2006-01-02T15:04:05"),
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
