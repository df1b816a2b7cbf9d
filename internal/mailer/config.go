package mailer

import (
	"os"
	"strconv"
)

// Config holds all configuration for the email delivery subsystem.
type Config struct {
	Enabled    bool
	Endpoint   string
	APIKey     string
	From       string
	TimeoutMs  int
	MaxRetries int
	LogSends   bool
}

// DefaultConfig returns a Config with sensible defaults.
// Delivery is disabled by default; enabling it requires an API key.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "https://api.resend.com",
		From:       "Maintenance Tracker <onboarding@resend.dev>",
		TimeoutMs:  10000,
		MaxRetries: 1,
		LogSends:   false,
	}
}

// LoadConfig reads mailer configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("UPKEEP_MAIL_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("UPKEEP_MAIL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("UPKEEP_MAIL_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("UPKEEP_MAIL_FROM"); v != "" {
		cfg.From = v
	}
	if v := os.Getenv("UPKEEP_MAIL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("UPKEEP_MAIL_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("UPKEEP_MAIL_LOG_SENDS"); v != "" {
		cfg.LogSends, _ = strconv.ParseBool(v)
	}

	return cfg
}
