package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string

	// Stability AI
	StabilityAPIKey string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),
		// Gemini accepts either key name; first non-empty wins
		GeminiAPIKey:    firstNonEmptyEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		StabilityAPIKey: os.Getenv("STABILITY_API_KEY"),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

// GeminiEnabled reports whether the chat feature has a credential.
func (c *Config) GeminiEnabled() bool { return c.GeminiAPIKey != "" }

// StabilityEnabled reports whether the image feature has a credential.
func (c *Config) StabilityEnabled() bool { return c.StabilityAPIKey != "" }

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
