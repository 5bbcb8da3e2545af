package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/database"
)

// HandleHealth reports process liveness and, when persistence is configured,
// database reachability.
func HandleHealth(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok", "database": "not configured"}

	if db := database.GetDB(); db != nil {
		if err := db.Ping(c.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		status["database"] = "ok"
	}

	return c.JSON(status)
}
