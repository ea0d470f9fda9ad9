package config

import (
	"os"
	"strconv"

	"github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	GinMode        string
	MaxUploadBytes int64
}

// PipelineConfig holds classification and resolution settings
type PipelineConfig struct {
	SampleSize      int
	AcceptThreshold float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
			MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 10<<20),
		},
		Pipeline: PipelineConfig{
			SampleSize:      getEnvIntOrDefault("SAMPLE_SIZE", 20),
			AcceptThreshold: getEnvFloatOrDefault("ACCEPT_THRESHOLD", 0.5),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Pipeline.SampleSize <= 0 {
		return errors.ConfigInvalid("SAMPLE_SIZE must be positive")
	}
	if config.Pipeline.AcceptThreshold <= 0 || config.Pipeline.AcceptThreshold > 1 {
		return errors.ConfigInvalid("ACCEPT_THRESHOLD must be in (0, 1]")
	}
	if config.Server.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
