package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AI      AIConfig
	Redis   RedisConfig
	Relay   RelayConfig
	Logging LoggingConfig
}

type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Transport   string // "direct" or "relay"
	RelayURL    string
	MaxAttempts int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RelayConfig struct {
	Addr string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AI: AIConfig{
			APIKey:      getEnv("AI_API_KEY", ""),
			BaseURL:     getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("AI_MODEL", "gpt-4o-mini"),
			Transport:   getEnv("AI_TRANSPORT", "direct"),
			RelayURL:    getEnv("AI_RELAY_URL", ""),
			MaxAttempts: getEnvInt("AI_MAX_ATTEMPTS", 1),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Relay: RelayConfig{
			Addr: getEnv("RELAY_ADDR", ":8787"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks structural settings only. A missing or placeholder API key
// is not an error here: the resolver decides that per call, because a user
// override may supply the key later.
func (c *Config) Validate() error {
	if c.AI.BaseURL == "" {
		return fmt.Errorf("AI_BASE_URL is required")
	}
	if c.AI.Model == "" {
		return fmt.Errorf("AI_MODEL is required")
	}
	switch c.AI.Transport {
	case "direct":
	case "relay":
		if c.AI.RelayURL == "" {
			return fmt.Errorf("AI_RELAY_URL is required when AI_TRANSPORT=relay")
		}
	default:
		return fmt.Errorf("AI_TRANSPORT must be \"direct\" or \"relay\", got %q", c.AI.Transport)
	}
	if c.AI.MaxAttempts < 1 {
		return fmt.Errorf("AI_MAX_ATTEMPTS must be >= 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
