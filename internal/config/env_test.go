package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 0.8, cfg.TopP)
	assert.Equal(t, 40, cfg.TopK)
	assert.Equal(t, 1000, cfg.MaxTokens)
	assert.Equal(t, "BLOCK_MEDIUM_AND_ABOVE", cfg.Safety)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMBOX_MODEL", "gemini-1.5-pro")
	t.Setenv("GEMBOX_TEMPERATURE", "0.2")
	t.Setenv("GEMBOX_TOP_P", "0.95")
	t.Setenv("GEMBOX_TOP_K", "64")
	t.Setenv("GEMBOX_MAX_TOKENS", "2048")
	t.Setenv("GEMBOX_SAFETY", "BLOCK_NONE")

	cfg := fromEnv(Defaults())
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 0.95, cfg.TopP)
	assert.Equal(t, 64, cfg.TopK)
	assert.Equal(t, 2048, cfg.MaxTokens)
	assert.Equal(t, "BLOCK_NONE", cfg.Safety)
}

func TestFromEnvBadNumbersKeepDefaults(t *testing.T) {
	t.Setenv("GEMBOX_TEMPERATURE", "warm")
	t.Setenv("GEMBOX_TOP_K", "many")
	t.Setenv("GEMBOX_MAX_TOKENS", "1e3")

	cfg := fromEnv(Defaults())
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 40, cfg.TopK)
	assert.Equal(t, 1000, cfg.MaxTokens)
}

func TestRedactedKey(t *testing.T) {
	assert.Equal(t, "(not set)", Config{}.RedactedKey())
	assert.Equal(t, "********", Config{APIKey: "short"}.RedactedKey())
	assert.Equal(t, "AIzaSyAB...", Config{APIKey: "AIzaSyABCDEF123456"}.RedactedKey())
}
