package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAdvisoryRequiresBreakeven(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/advisory", HandleAdvisory)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/advisory", `{"roas": 2.5}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAdvisoryHappyPath(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/advisory", HandleAdvisory)

	body := `{
		"breakeven_price": 20,
		"roas": 2.8,
		"margins": {"conservative": 22, "moderate": 27, "aggressive": 30},
		"market": {"saturation": 60, "trend_score": 80, "seasonality": "Stable"},
		"competitors": [
			{"platform": "amazon", "price": 35, "rating": 4.4, "reviews": 120},
			{"platform": "amazon", "price": 42, "rating": 4.1, "reviews": 80},
			{"platform": "etsy", "price": 39, "rating": 4.7, "reviews": 45}
		],
		"product": {"name": "Ceramic Mug", "category": "home"}
	}`
	resp, err := app.Test(jsonRequest("POST", "/api/v1/advisory", body))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]interface{})
	strategies := data["pricing_strategies"].([]interface{})
	assert.Len(t, strategies, 3)
	risks := data["top_risks"].([]interface{})
	assert.Len(t, risks, 3)
	overall := data["overall_recommendation"].(map[string]interface{})
	assert.Contains(t, []string{"GO", "CAUTION", "NO-GO"}, overall["verdict"])
	assert.NotEmpty(t, overall["action_plan"])
}
