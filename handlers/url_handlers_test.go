package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func urlApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/analyze/url", HandleAnalyzeURL)
	return app
}

func TestAnalyzeURLRequiresURL(t *testing.T) {
	app := urlApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/analyze/url", `{}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAnalyzeURLRejectsUnsupportedProtocol(t *testing.T) {
	app := urlApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/analyze/url", `{"url": "ftp://example.com/item-1"}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAnalyzeURLAutoFillsEstimates(t *testing.T) {
	app := urlApp()

	body := `{"url": "https://www.amazon.com/Wireless-Earbuds-Bluetooth/dp/B0C1234567"}`
	resp, err := app.Test(jsonRequest("POST", "/api/v1/analyze/url", body))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])

	detection := payload["detection"].(map[string]interface{})
	assert.Equal(t, "amazon", detection["provider"])
	assert.Equal(t, "B0C1234567", detection["id"])

	data := payload["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, "electronics", product["category"])
	assert.Equal(t, "Wireless Earbuds Bluetooth", product["name"])

	autofill := payload["autofill"].(map[string]interface{})
	assert.Greater(t, autofill["estimated_price"].(float64), 0.0)
	assert.Greater(t, autofill["estimated_cogs"].(float64), 0.0)
}
