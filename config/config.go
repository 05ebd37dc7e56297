// Package config loads and validates the application configuration from
// environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	Address        string
	Env            string
	LogLevel       string
	LogDir         string
	SessionTTLMin  int   // Idle session lifetime in minutes
	MaxRequestBody int64 // Maximum request body size in bytes
	MaxHeaderSize  int64 // Maximum header size in bytes
}

// Load loads and validates configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8000"),
		Address:        getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:            getEnvWithDefault("ENV", "dev"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		LogDir:         getEnvWithDefault("LOG_DIR", "logs"),
		SessionTTLMin:  getIntEnvWithDefault("SESSION_TTL_MINUTES", 120),
		MaxRequestBody: getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576), // 1MB
		MaxHeaderSize:  getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),  // 1MB
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}
	if err := validateOneOf("ENV", cfg.Env, []string{"dev", "staging", "prod", "test"}); err != nil {
		return err
	}
	if err := validateOneOf("LOG_LEVEL", cfg.LogLevel, []string{"debug", "info", "warn", "error"}); err != nil {
		return err
	}
	if cfg.SessionTTLMin < 1 || cfg.SessionTTLMin > 24*60 {
		return fmt.Errorf("invalid SESSION_TTL_MINUTES: must be between 1 and 1440, got %d", cfg.SessionTTLMin)
	}
	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return err
	}
	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return err
	}
	return nil
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}
	if n < 1024 || n > 65535 {
		return fmt.Errorf("PORT must be between 1024 and 65535, got %d", n)
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}
	if address == "localhost" {
		return nil
	}
	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}
	return nil
}

func validateOneOf(name, value string, valid []string) error {
	v := strings.ToLower(value)
	for _, candidate := range valid {
		if v == candidate {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: must be one of %v, got: %s", name, valid, value)
}

func validateSizeLimit(size int64, name string) error {
	if size <= 0 {
		return fmt.Errorf("invalid %s: must be positive, got %d", name, size)
	}
	if size > 100*1024*1024 {
		return fmt.Errorf("invalid %s: too large (max 100MB), got %d bytes", name, size)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
