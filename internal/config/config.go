package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port              string
	DBPath            string
	JWTSecret         string
	DashboardPassword string

	// Chat assistant backend (OpenAI-compatible API)
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Seed an empty database with generated demo floats on startup
	SeedDemoData bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/argo/argo.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	dashboardPassword := os.Getenv("DASHBOARD_PASSWORD")
	if dashboardPassword == "" {
		dashboardPassword = "argo-demo"
	}

	llmBaseURL := os.Getenv("LLM_BASE_URL")
	if llmBaseURL == "" {
		llmBaseURL = "https://api.openai.com/v1"
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gpt-4o-mini"
	}

	return &Config{
		Port:              port,
		DBPath:            dbPath,
		JWTSecret:         jwtSecret,
		DashboardPassword: dashboardPassword,
		LLMBaseURL:        llmBaseURL,
		LLMAPIKey:         os.Getenv("LLM_API_KEY"),
		LLMModel:          llmModel,
		SeedDemoData:      os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
