package config

import (
	"os"
	"strconv"
	"strings"

	"studytrack/internal/errors"
	"studytrack/models"
)

// Config represents the complete application configuration.
type Config struct {
	Database  DatabaseConfig
	AI        *models.AIConfig
	Server    ServerConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// DSN returns the connection string with the configured sslmode
// appended when the URL does not already carry one.
func (d DatabaseConfig) DSN() string {
	if d.SSLMode == "" || strings.Contains(d.URL, "sslmode=") {
		return d.URL
	}
	sep := "?"
	if strings.Contains(d.URL, "?") {
		sep = "&"
	}
	return d.URL + sep + "sslmode=" + d.SSLMode
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port    string
	GinMode string
}

// ProfilingConfig holds the ops server settings (health + pprof).
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}

	aiConfig, err := loadAIConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AI configuration")
	}

	return &Config{
		Database:  *dbConfig,
		AI:        aiConfig,
		Server:    loadServerConfig(),
		Profiling: loadProfilingConfig(),
	}, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:     url,
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

func loadAIConfig() (*models.AIConfig, error) {
	aiConfig := models.DefaultAIConfig()
	if aiConfig.OpenAIKey == "" {
		return nil, errors.ConfigInvalid("OPENAI_API_KEY is required")
	}
	return aiConfig, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", true),
	}
}

// Helper functions for environment variable parsing.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
