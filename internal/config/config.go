package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"obesitydash/internal/errors"
)

// DefaultDataFile is the survey CSV read when DATA_FILE is not set.
const DefaultDataFile = "ObesityDataSet_raw_and_data_sinthetic.csv"

// Data source kinds
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Filter    FilterConfig
	Chart     ChartConfig
	Logging   LoggingConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds survey data source settings
type DataConfig struct {
	File     string
	Source   string
	CacheTTL time.Duration
}

// DatabaseConfig holds the optional Postgres connection
type DatabaseConfig struct {
	URL   string
	Table string
}

// FilterConfig holds row filter behavior switches
type FilterConfig struct {
	ApplyFamilyHistory bool
}

// ChartConfig holds rendered chart dimensions in pixels
type ChartConfig struct {
	Width  int
	Height int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Database:  *loadDatabaseConfig(),
		Filter:    *loadFilterConfig(),
		Chart:     *loadChartConfig(),
		Logging:   LoggingConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:     getEnvOrDefault("DATA_FILE", DefaultDataFile),
		Source:   strings.ToLower(getEnvOrDefault("DATA_SOURCE", SourceFile)),
		CacheTTL: getEnvDurationOrDefault("DATA_CACHE_TTL", 0),
	}
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:   getEnvOrDefault("DATABASE_URL", ""),
		Table: getEnvOrDefault("SURVEY_TABLE", "obesity_survey"),
	}
}

func loadFilterConfig() *FilterConfig {
	return &FilterConfig{
		ApplyFamilyHistory: getEnvBoolOrDefault("APPLY_FAMILY_HISTORY", false),
	}
}

func loadChartConfig() *ChartConfig {
	return &ChartConfig{
		Width:  getEnvIntOrDefault("CHART_WIDTH", 800),
		Height: getEnvIntOrDefault("CHART_HEIGHT", 480),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case SourceFile:
		if config.Data.File == "" {
			return errors.ConfigInvalid("DATA_FILE is required for the file data source")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres data source")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be \"file\" or \"postgres\", got " + strconv.Quote(config.Data.Source))
	}
	if config.Data.CacheTTL < 0 {
		return errors.ConfigInvalid("DATA_CACHE_TTL cannot be negative")
	}
	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return errors.ConfigInvalid("CHART_WIDTH and CHART_HEIGHT must be positive")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
