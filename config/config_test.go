package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ADDRESS", "ENV", "LOG_LEVEL", "LOG_DIR",
		"SESSION_TTL_MINUTES", "MAX_REQUEST_BODY", "MAX_HEADER_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Address = %q, want 127.0.0.1", cfg.Address)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SessionTTLMin != 120 {
		t.Errorf("SessionTTLMin = %d, want 120", cfg.SessionTTLMin)
	}
	if cfg.MaxRequestBody != 1048576 {
		t.Errorf("MaxRequestBody = %d, want 1MB", cfg.MaxRequestBody)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADDRESS", "0.0.0.0")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SESSION_TTL_MINUTES", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9090" || cfg.Address != "0.0.0.0" || cfg.Env != "prod" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.SessionTTLMin != 30 {
		t.Errorf("SessionTTLMin = %d, want 30", cfg.SessionTTLMin)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", "PORT", "abc"},
		{"port privileged", "PORT", "80"},
		{"port too large", "PORT", "70000"},
		{"bad address", "ADDRESS", "not-an-ip"},
		{"bad env", "ENV", "production!"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"ttl zero", "SESSION_TTL_MINUTES", "0"},
		{"ttl too long", "SESSION_TTL_MINUTES", "2000"},
		{"body size too large", "MAX_REQUEST_BODY", "209715200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s should fail validation", tt.key, tt.value)
			}
		})
	}
}

func TestValidateAddressLocalhost(t *testing.T) {
	if err := validateAddress("localhost"); err != nil {
		t.Errorf("localhost should be accepted: %v", err)
	}
	if err := validateAddress("::1"); err != nil {
		t.Errorf("IPv6 loopback should be accepted: %v", err)
	}
}
