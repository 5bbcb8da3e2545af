package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/catalog"
	"github.com/Dandresen1/margin-mindset-43/margin"
	"github.com/Dandresen1/margin-mindset-43/models"
	"github.com/Dandresen1/margin-mindset-43/urldetect"
)

// HandleAnalyzeURL classifies a product URL, auto-fills input estimates from
// category benchmarks and runs the analysis on those estimates.
func HandleAnalyzeURL(c *fiber.Ctx) error {
	var req models.URLAnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "url is required"})
	}

	detection, err := urldetect.Detect(req.URL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product URL: " + err.Error()})
	}

	category, categoryBadge := catalog.DetectCategory(detection.ProductName)
	autofill := catalog.AutoFill(string(detection.Provider), category)

	input := margin.Input{
		Price:          autofill.EstimatedPrice,
		COGS:           autofill.EstimatedCOGS,
		Platform:       string(detection.Provider),
		WeightOz:       autofill.WeightOz,
		ShippingMethod: "calculated",
		AdSpend: margin.AdSpend{
			// benchmark conversion rates are percentages
			ConversionRate: autofill.ConversionRate / 100,
			CPC:            autofill.CPC,
		},
		ProductName: detection.ProductName,
		ProductURL:  detection.CanonicalURL,
	}

	result, err := margin.Compute(input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to analyze product estimates"})
	}
	result.Product.Category = string(category)

	return c.JSON(fiber.Map{
		"success":             true,
		"detection":           detection,
		"autofill":            autofill,
		"category_confidence": categoryBadge,
		"data":                result,
	})
}
