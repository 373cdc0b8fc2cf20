package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 100
)

var validate = validator.New()

// detail writes the uniform error body every non-2xx response carries.
func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"detail": message})
}

func parseLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultRecentLimit)
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return limit
}
