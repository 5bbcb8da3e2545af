package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/competitors"
	"github.com/Dandresen1/margin-mindset-43/models"
)

// competitorCache keeps recent competitor sets so repeated analyses of the
// same product don't need to re-send the full record list.
var competitorCache = competitors.NewCache()

// HandleCompetitorAnalysis derives market insights, price distribution and
// positioning from a competitor record set.
func HandleCompetitorAnalysis(c *fiber.Ctx) error {
	var req models.CompetitorAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	// A missing or zero your_price just skips the positioning section
	records := req.Competitors
	if len(records) == 0 && req.CacheKey != "" {
		records = competitorCache.Get(req.CacheKey)
	}

	result := competitors.Analyze(records, req.YourPrice)

	if req.CacheKey != "" && len(req.Competitors) > 0 {
		competitorCache.Put(req.CacheKey, req.Competitors, competitors.DefaultTTL)
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}
