// Package config reads runtime settings from the environment, after first
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvBank            = "TDAHSCREEN_BANK"
	EnvContent         = "TDAHSCREEN_CONTENT"
	EnvAddr            = "TDAHSCREEN_ADDR"
	EnvVerbose         = "TDAHSCREEN_VERBOSE"
	EnvAllowedOrigins  = "TDAHSCREEN_ALLOWED_ORIGINS"
	EnvShutdownSeconds = "TDAHSCREEN_SHUTDOWN_SECONDS"

	DefaultAddr            = ":8043"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds settings shared by every command. Empty BankPath or
// ContentPath selects the embedded documents.
type Config struct {
	BankPath        string
	ContentPath     string
	Addr            string
	Verbose         bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds a Config from the
// environment. An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		BankPath:        os.Getenv(EnvBank),
		ContentPath:     os.Getenv(EnvContent),
		Addr:            getEnvOrDefault(EnvAddr, DefaultAddr),
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config.FromEnv: %s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}

	if v := os.Getenv(EnvAllowedOrigins); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	if v := os.Getenv(EnvShutdownSeconds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("config.FromEnv: %s: invalid value %q", EnvShutdownSeconds, v)
		}
		cfg.ShutdownTimeout = time.Duration(n) * time.Second
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
