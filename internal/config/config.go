// Package config loads process-wide settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present; a missing file is not an error.
const DefaultEnvFile = ".env"

type Config struct {
	// Credential. API_KEY wins over GEMINI_API_KEY when both are set.
	APIKey       string `env:"API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`   // debug|info|warn|error
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text|json

	// Where generated images are written by default
	OutputDir string `env:"SHOWCASE_OUTPUT_DIR" envDefault:"."`
}

// Load reads envFiles (if they exist) into the process environment and
// parses the result. Variables already set in the environment take
// precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Credential returns the configured API key, or "" when none is set.
func (c *Config) Credential() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.GeminiAPIKey)
}

// CredentialFromEnv loads the configuration and returns its credential.
func CredentialFromEnv() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	return cfg.Credential(), nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
