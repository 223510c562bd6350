package config

import (
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Env        string
	LogLevel   string
	Strictness string
	Language   string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:        getEnv("ACIP_ENV", "development"),
		LogLevel:   getEnv("ACIP_LOG_LEVEL", "info"),
		Strictness: strings.ToLower(strings.TrimSpace(getEnv("ACIP_STRICTNESS", "moderate"))),
		Language:   strings.ToLower(strings.TrimSpace(getEnv("ACIP_LANGUAGE", "en"))),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
