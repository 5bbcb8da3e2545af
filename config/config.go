package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret    string
	DatabaseURL  string
	GeminiAPIKey string
	ListenAddr   string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads configuration from the environment. Only JWT_SECRET is
// required; without DATABASE_URL the server runs in ephemeral mode and
// without GEMINI_API_KEY the AI summary endpoint is disabled.
func Load() {
	AppConfig = Config{
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		ListenAddr:   ":3000",
	}
	if port := os.Getenv("PORT"); port != "" {
		AppConfig.ListenAddr = ":" + port
	}
}
