package config

// Config is the flat option set shared by every command. Values come from
// the environment (or a .env file) with defaults for everything but the key.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
	Safety      string
}

func Defaults() Config {
	return Config{
		Model:       "gemini-1.5-flash",
		Temperature: 0.7,
		TopP:        0.8,
		TopK:        40,
		MaxTokens:   1000,
		Safety:      "BLOCK_MEDIUM_AND_ABOVE",
	}
}

// RedactedKey returns the API key shortened for display ("AIza1234..."),
// or "(not set)" when empty.
func (c Config) RedactedKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	if len(c.APIKey) <= 8 {
		return "********"
	}
	return c.APIKey[:8] + "..."
}
