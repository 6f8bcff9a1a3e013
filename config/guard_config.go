package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	Environment string

	// Inference service
	InferenceURL        string
	InferenceTimeoutSec int

	// OpenAI fallback classifier (used when no inference URL is configured)
	OpenAIAPIKey string
	LLMModel     string

	// YouTube
	CommentFetchLimit int
	VideoPageSize     int

	// Scan
	ScanConcurrency int

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		InferenceURL:        getEnv("INFERENCE_URL", ""),
		InferenceTimeoutSec: getEnvInt("INFERENCE_TIMEOUT_SEC", 15),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		LLMModel:     getEnv("LLM_MODEL", "gpt-4o-mini"),

		CommentFetchLimit: getEnvInt("COMMENT_FETCH_LIMIT", 20),
		VideoPageSize:     getEnvInt("VIDEO_PAGE_SIZE", 8),

		ScanConcurrency: getEnvInt("SCAN_CONCURRENCY", 8),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
