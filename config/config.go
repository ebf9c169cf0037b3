// Package config has the configuration for the extractor.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Defaults reproduce the original tool's hard-coded behavior: paths
// relative to the working directory, IMF column names.
const (
	DefaultInputCSV    = "data/48-indicators/IMF_GFSE_GE_G14.csv"
	DefaultOutputJSON  = "country-mapping.json"
	DefaultCodeColumn  = "REF_AREA"
	DefaultLabelColumn = "REF_AREA_LABEL"
)

// Config holds all extractor configuration
type Config struct {
	InputCSV    string // Path of the indicator CSV to read
	OutputJSON  string // Path of the JSON mapping artifact to write
	CodeColumn  string // Header name of the country code column
	LabelColumn string // Header name of the country label column
	LogLevel    string
	LogDir      string // Empty means console-only logging
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		InputCSV:    getEnvWithDefault("INPUT_CSV", DefaultInputCSV),
		OutputJSON:  getEnvWithDefault("OUTPUT_JSON", DefaultOutputJSON),
		CodeColumn:  getEnvWithDefault("CODE_COLUMN", DefaultCodeColumn),
		LabelColumn: getEnvWithDefault("LABEL_COLUMN", DefaultLabelColumn),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		LogDir:      getEnvWithDefault("LOG_DIR", ""),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePath(cfg.InputCSV, "INPUT_CSV"); err != nil {
		return err
	}

	if err := validatePath(cfg.OutputJSON, "OUTPUT_JSON"); err != nil {
		return err
	}

	if err := validateColumns(cfg.CodeColumn, cfg.LabelColumn); err != nil {
		return err
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// validatePath validates a configured file path
func validatePath(path, configName string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s cannot be empty", configName)
	}
	return nil
}

// validateColumns validates the configured column names
func validateColumns(codeColumn, labelColumn string) error {
	if strings.TrimSpace(codeColumn) == "" {
		return fmt.Errorf("CODE_COLUMN cannot be empty")
	}

	if strings.TrimSpace(labelColumn) == "" {
		return fmt.Errorf("LABEL_COLUMN cannot be empty")
	}

	if codeColumn == labelColumn {
		return fmt.Errorf("CODE_COLUMN and LABEL_COLUMN must differ, both are: %s", codeColumn)
	}

	return nil
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"INPUT_CSV",
		"OUTPUT_JSON",
		"CODE_COLUMN",
		"LABEL_COLUMN",
		"LOG_LEVEL",
		"LOG_DIR",
	}
}
