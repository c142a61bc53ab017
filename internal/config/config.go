// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool

	// Model credential. Empty is a valid operating mode: the advisor runs
	// fallback-only and never attempts a model call.
	OpenAIAPIKey string
	OpenAIModel  string

	AIMaxRetries int           // total model-call attempts per narrative request
	AIBaseDelay  time.Duration // base backoff delay for rate-limited calls

	// AnalysisDelay is the facade's simulated computation latency
	AnalysisDelay time.Duration

	// Risk level cut-offs, overridable for tuning
	RiskThresholdLow      int
	RiskThresholdModerate int
	RiskThresholdHigh     int
}

// Load reads configuration from environment variables, with an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvAsInt("PORT", 8002),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DevMode:  getEnvAsBool("DEV_MODE", false),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),

		AIMaxRetries: getEnvAsInt("AI_MAX_RETRIES", 3),
		AIBaseDelay:  getEnvAsDuration("AI_BASE_DELAY", time.Second),

		AnalysisDelay: getEnvAsDuration("ANALYSIS_DELAY", 1500*time.Millisecond),

		RiskThresholdLow:      getEnvAsInt("RISK_THRESHOLD_LOW", 30),
		RiskThresholdModerate: getEnvAsInt("RISK_THRESHOLD_MODERATE", 45),
		RiskThresholdHigh:     getEnvAsInt("RISK_THRESHOLD_HIGH", 60),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.AIMaxRetries < 1 {
		return fmt.Errorf("AI_MAX_RETRIES must be at least 1, got %d", c.AIMaxRetries)
	}
	if c.AIBaseDelay < 0 || c.AnalysisDelay < 0 {
		return fmt.Errorf("delays must be non-negative")
	}
	if !(c.RiskThresholdLow < c.RiskThresholdModerate && c.RiskThresholdModerate < c.RiskThresholdHigh) {
		return fmt.Errorf("risk thresholds must be strictly increasing: %d/%d/%d",
			c.RiskThresholdLow, c.RiskThresholdModerate, c.RiskThresholdHigh)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
