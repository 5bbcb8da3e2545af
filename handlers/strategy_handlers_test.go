package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStrategiesRequiresCOGS(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/strategies", HandleGenerateStrategies)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/strategies", `{"competitor_prices": [10, 20]}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGenerateStrategiesHappyPath(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/strategies", HandleGenerateStrategies)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/strategies",
		`{"cogs": 8, "competitor_prices": [10, 20, 30, 40, 50], "category": "electronics", "platform_fees": 4.5}`))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].([]interface{})
	if !assert.Len(t, data, 3) {
		return
	}
	conservative := data[0].(map[string]interface{})
	assert.Equal(t, "Conservative", conservative["name"])
	assert.Equal(t, 40.0, conservative["selling_price"])
	market := data[1].(map[string]interface{})
	assert.Equal(t, "Market", market["name"])
	assert.Equal(t, 30.0, market["selling_price"])
	aggressive := data[2].(map[string]interface{})
	assert.Equal(t, "Aggressive", aggressive["name"])
	assert.Equal(t, 20.0, aggressive["selling_price"])
}
