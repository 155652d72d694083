// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	GitHubToken    string
	GitHubOwner    string
	MaintainersDir string
	LogLevel       string
}

// Load reads configuration from the environment and returns a validated
// Config. An optional .env file in the working directory is merged in first
// without overriding already-set variables. PRTRIAGE_GITHUB_TOKEN is
// required; optional variables with defaults: PRTRIAGE_GITHUB_OWNER
// (ansible), PRTRIAGE_MAINTAINERS_DIR (.), PRTRIAGE_LOG_LEVEL (info).
func Load() (*Config, error) {
	// godotenv never overrides real environment variables; a missing .env
	// file is not an error.
	_ = godotenv.Load()

	token := os.Getenv("PRTRIAGE_GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("PRTRIAGE_GITHUB_TOKEN is required")
	}

	owner := "ansible"
	if v, ok := os.LookupEnv("PRTRIAGE_GITHUB_OWNER"); ok && v != "" {
		owner = v
	}

	maintainersDir := "."
	if v, ok := os.LookupEnv("PRTRIAGE_MAINTAINERS_DIR"); ok && v != "" {
		maintainersDir = v
	}

	logLevel := "info"
	if v, ok := os.LookupEnv("PRTRIAGE_LOG_LEVEL"); ok && v != "" {
		logLevel = v
	}

	return &Config{
		GitHubToken:    token,
		GitHubOwner:    owner,
		MaintainersDir: maintainersDir,
		LogLevel:       logLevel,
	}, nil
}
