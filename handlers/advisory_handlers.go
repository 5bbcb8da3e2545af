package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/advisor"
	"github.com/Dandresen1/margin-mindset-43/models"
)

// HandleAdvisory turns a computed analysis into pricing strategies, a risk
// assessment, success metrics and an overall recommendation.
func HandleAdvisory(c *fiber.Ctx) error {
	var req models.AdvisoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.BreakevenPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "breakeven_price must be greater than zero"})
	}

	output := advisor.Generate(req.Input)

	return c.JSON(fiber.Map{"success": true, "data": output})
}
