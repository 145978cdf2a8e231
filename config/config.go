package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

// LoadEnv loads the env file for the given APP_ENV into the process
// environment. Missing files are fine; OS environment wins.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

type Config struct {
	AppEnv           string
	Port             string
	LogFile          string
	RateLimitEnabled bool
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		Port:             getEnv("PORT", "8080"),
		LogFile:          getEnv("LOG_FILE", ""),
		RateLimitEnabled: getEnv("RATE_LIMIT_ENABLED", "true") != "false",
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
