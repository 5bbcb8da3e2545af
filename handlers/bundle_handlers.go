package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/bundles"
	"github.com/Dandresen1/margin-mindset-43/models"
)

var bundleEngine = bundles.NewEngine()

// HandleBundleRecommendations proposes 2-3 item bundles around a primary
// product, scored by feasibility and true profit lift.
func HandleBundleRecommendations(c *fiber.Ctx) error {
	var req models.BundlesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.Primary.Name == "" || req.Primary.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "primary product with a positive price is required"})
	}

	target := bundles.DefaultTargetMarginLift
	if req.TargetMarginLift != nil {
		target = *req.TargetMarginLift
	}

	recs := bundleEngine.Recommendations(req.Primary, req.Candidates, target)
	if recs == nil {
		recs = []bundles.Recommendation{}
	}

	return c.JSON(fiber.Map{"success": true, "data": recs})
}
