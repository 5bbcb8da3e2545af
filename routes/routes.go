package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dandresen1/margin-mindset-43/handlers"
	"github.com/Dandresen1/margin-mindset-43/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealth)

	api := app.Group("/api/v1")

	// --- Analysis Routes ---
	// Anonymous callers are allowed; authenticated callers get persistence.
	api.Post("/analyze", middleware.OptionalAuth, handlers.HandleAnalyze)
	api.Post("/analyze/url", middleware.OptionalAuth, handlers.HandleAnalyzeURL)

	// --- Decision-Support Routes ---
	api.Post("/competitors", handlers.HandleCompetitorAnalysis)
	api.Post("/strategies", handlers.HandleGenerateStrategies)
	api.Post("/advisory", handlers.HandleAdvisory)
	api.Post("/bundles", handlers.HandleBundleRecommendations)

	// --- Report Routes ---
	reports := api.Group("/reports", middleware.JWTMiddleware)
	reports.Get("/", handlers.HandleListReports)
	reports.Get("/:reportId", handlers.HandleGetReport)

	// --- AI Routes ---
	ai := api.Group("/ai", middleware.JWTMiddleware)
	ai.Post("/summary", handlers.HandleAISummary)
}
