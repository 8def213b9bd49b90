package config

import (
	"errors"
	"os"
)

// Config holds all the configuration for the application.
type Config struct {
	ListenAddr        string
	QuestionsDir      string
	DatabasePath      string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	AllowedOrigin     string
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY environment variable is required")
	}

	return &Config{
		ListenAddr:        getenv("LISTEN_ADDR", ":8000"),
		QuestionsDir:      getenv("QUESTIONS_DIR", "./questions"),
		DatabasePath:      getenv("DB_PATH", "./data/interview.db"),
		OpenRouterAPIKey:  apiKey,
		OpenRouterBaseURL: getenv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		AllowedOrigin:     getenv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
