package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI. Flags override them.
const (
	envFile     = "ADJGRAPH_FILE"
	envLogLevel = "ADJGRAPH_LOG_LEVEL"
	envLogFmt   = "ADJGRAPH_LOG_FORMAT"
	envMaxPaths = "ADJGRAPH_MAX_PATHS"
	envTimeout  = "ADJGRAPH_TIMEOUT"
)

// Config controls CLI behavior.
type Config struct {
	File      string
	LogLevel  string
	LogFormat string
	JSON      bool
	MaxPaths  int
	MaxDepth  int
	Timeout   time.Duration
}

// loadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; existing variables win.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// defaultConfig returns the flag defaults derived from the environment.
func defaultConfig() Config {
	return Config{
		File:      envOrDefault(envFile, ""),
		LogLevel:  envOrDefault(envLogLevel, "warn"),
		LogFormat: envOrDefault(envLogFmt, "console"),
		MaxPaths:  envOrDefaultInt(envMaxPaths, 0),
		MaxDepth:  -1,
		Timeout:   envOrDefaultDuration(envTimeout, 0),
	}
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed := 0
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
