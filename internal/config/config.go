package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	DataFile     string
	LogLevel     string
	InterestRate float64
	HashPINs     bool

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	RateFeedURL string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		DataFile:     getEnv("DATA_FILE", "accounts.json"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "yourbank@example.com"),
		RateFeedURL:  getEnv("RATE_FEED_URL", ""),
	}

	rate, err := strconv.ParseFloat(getEnv("INTEREST_RATE", "4.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid INTEREST_RATE: %w", err)
	}
	cfg.InterestRate = rate

	hashPINs, err := strconv.ParseBool(getEnv("HASH_PINS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid HASH_PINS: %w", err)
	}
	cfg.HashPINs = hashPINs

	if cfg.DataFile == "" {
		return nil, fmt.Errorf("DATA_FILE is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
