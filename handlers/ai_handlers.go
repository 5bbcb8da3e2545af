package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Dandresen1/margin-mindset-43/config"
	"github.com/Dandresen1/margin-mindset-43/models"
)

// HandleAISummary narrates an analysis result in plain language using the
// Gemini model. Requires GEMINI_API_KEY; disabled otherwise.
func HandleAISummary(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI summary is not configured"})
	}

	var req models.AISummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.Analysis.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "analysis is required"})
	}

	summary, err := generateSummary(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "summary": summary})
}

// generateSummary uses Gemini to create a human-readable read of the numbers.
func generateSummary(ctx context.Context, req models.AISummaryRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")

	jsonData, err := json.Marshal(req.Analysis)
	if err != nil {
		return "", fmt.Errorf("failed to serialize analysis: %w", err)
	}

	question := req.Question
	if question == "" {
		question = "Is this product worth reselling, and what should I watch out for?"
	}

	prompt := fmt.Sprintf(
		`You are a helpful assistant for e-commerce resellers. The user asked: "%s". Based on the following unit-economics analysis, provide a concise and helpful summary of the product's viability:

		Analysis: %s`,
		question,
		string(jsonData),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI model returned an empty response")
	}

	return fmt.Sprint(resp.Candidates[0].Content.Parts[0]), nil
}
