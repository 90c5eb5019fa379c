package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load resolves the configuration. godotenv does not override variables that
// are already set, so precedence is process env > .env > defaults. A missing
// .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return fromEnv(Defaults())
}

func fromEnv(cfg Config) Config {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GEMBOX_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.Temperature = floatEnv("GEMBOX_TEMPERATURE", cfg.Temperature)
	cfg.TopP = floatEnv("GEMBOX_TOP_P", cfg.TopP)
	cfg.TopK = intEnv("GEMBOX_TOP_K", cfg.TopK)
	cfg.MaxTokens = intEnv("GEMBOX_MAX_TOKENS", cfg.MaxTokens)
	if v := os.Getenv("GEMBOX_SAFETY"); v != "" {
		cfg.Safety = v
	}
	return cfg
}

// floatEnv parses an env var as float64, keeping the fallback on absence or
// parse failure. Type coercion only; no range validation.
func floatEnv(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func intEnv(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
