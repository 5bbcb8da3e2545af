package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/catalog"
	"github.com/Dandresen1/margin-mindset-43/models"
	"github.com/Dandresen1/margin-mindset-43/strategy"
)

// HandleGenerateStrategies produces the three-tier pricing ladder from COGS
// and observed competitor prices.
func HandleGenerateStrategies(c *fiber.Ctx) error {
	var req models.StrategiesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.COGS <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "cogs must be greater than zero"})
	}

	strategies := strategy.FromCost(req.COGS, req.CompetitorPrices, catalog.ProductCategory(req.Category), req.PlatformFees)

	return c.JSON(fiber.Map{"success": true, "data": strategies})
}
