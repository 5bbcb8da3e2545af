package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Dandresen1/margin-mindset-43/catalog"
	"github.com/Dandresen1/margin-mindset-43/database"
	"github.com/Dandresen1/margin-mindset-43/margin"
	"github.com/Dandresen1/margin-mindset-43/middleware"
	"github.com/Dandresen1/margin-mindset-43/models"
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// Defaults applied to an analyze request when the caller omits fields.
const (
	defaultPrice          = 29.99
	defaultCOGS           = 8.00
	defaultPlatform       = "amazon"
	defaultWeightOz       = 8.0
	defaultShipping       = "calculated"
	defaultConversionRate = 0.02
	defaultCPC            = 1.50
)

// HandleAnalyze runs the full unit-economics analysis. Authenticated callers
// get the result persisted as a report; anonymous callers get an ephemeral
// result with a synthesized id.
func HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	input := analyzeInput(req)

	result, err := margin.Compute(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if input.ProductName != "" {
		if category, badge := catalog.DetectCategory(input.ProductName); badge.Level != catalog.ConfidenceLow {
			result.Product.Category = string(category)
		}
	}

	claims, authErr := middleware.ExtractClaims(c)
	if authErr != nil {
		result.ID = fmt.Sprintf("anonymous-%d", time.Now().UnixMilli())
		return c.JSON(fiber.Map{"success": true, "data": result, "persisted": false})
	}

	if db := database.GetDB(); db != nil {
		if reportID, err := saveReport(c.Context(), claims.UserID, input, result); err != nil {
			log.Printf("failed to persist report for user %s: %v", claims.UserID, err)
		} else {
			return c.JSON(fiber.Map{"success": true, "data": result, "persisted": true, "report_id": reportID})
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": result, "persisted": false})
}

func analyzeInput(req models.AnalyzeRequest) margin.Input {
	input := margin.Input{
		Price:            defaultPrice,
		COGS:             defaultCOGS,
		Platform:         defaultPlatform,
		WeightOz:         defaultWeightOz,
		ShippingMethod:   defaultShipping,
		FlatShippingCost: req.FlatShippingCost,
		PackagingCost:    req.PackagingCost,
		ReturnRate:       req.ReturnRate,
		RecoveryRate:     req.RecoveryRate,
		AdSpend: margin.AdSpend{
			ConversionRate: defaultConversionRate,
			CPC:            defaultCPC,
		},
		ProductName: req.ProductName,
		ProductURL:  req.ProductURL,
		ImagePath:   req.ImagePath,
	}

	if req.Price != nil {
		input.Price = *req.Price
	}
	if req.COGS != nil {
		input.COGS = *req.COGS
	}
	if req.Platform != "" {
		input.Platform = req.Platform
	}
	if req.WeightOz != nil {
		input.WeightOz = *req.WeightOz
	}
	if req.ShippingMethod != "" {
		input.ShippingMethod = req.ShippingMethod
	}
	if req.AdSpend != nil {
		if req.AdSpend.ConversionRate != nil {
			input.AdSpend.ConversionRate = *req.AdSpend.ConversionRate
		}
		if req.AdSpend.CPC != nil {
			input.AdSpend.CPC = *req.AdSpend.CPC
		}
	}
	return input
}

// saveReport stores the (input, output) pair as a report row and returns the
// new report id.
func saveReport(ctx context.Context, userID string, input margin.Input, result *margin.AnalysisResult) (string, error) {
	db := database.GetDB()

	reportNumber, err := utils.GenerateReportNumber(ctx, db)
	if err != nil {
		return "", fmt.Errorf("failed to generate report number: %w", err)
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to serialize input: %w", err)
	}
	outputJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}

	reportID := uuid.NewString()
	_, err = db.Exec(ctx, `
        INSERT INTO reports (id, report_number, user_id, product_name, verdict, input, output, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    `, reportID, reportNumber, userID, result.Product.Name, result.Recommendation.Verdict, inputJSON, outputJSON)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}

	return reportID, nil
}
