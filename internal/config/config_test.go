package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without AUTH_JWT_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	for _, key := range []string{"QUERY_TIMEOUT", "TELEMETRY_WORKERS", "MOST_SEARCHED_LIMIT", "PROPERTY_COLLECTION", "API_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("QueryTimeout = %s", cfg.QueryTimeout)
	}
	if cfg.TelemetryWorkers != 4 {
		t.Errorf("TelemetryWorkers = %d", cfg.TelemetryWorkers)
	}
	if cfg.MostSearchedLimit != 5 {
		t.Errorf("MostSearchedLimit = %d", cfg.MostSearchedLimit)
	}
	if cfg.PropertyCollection != "properties" {
		t.Errorf("PropertyCollection = %q", cfg.PropertyCollection)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if len(cfg.JWTConfigs) != 1 || string(cfg.JWTConfigs[0].Secret) != "secret" {
		t.Errorf("JWTConfigs = %+v", cfg.JWTConfigs)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("QUERY_TIMEOUT", "750ms")
	t.Setenv("TELEMETRY_WORKERS", "8")
	t.Setenv("API_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QueryTimeout != 750*time.Millisecond {
		t.Errorf("QueryTimeout = %s", cfg.QueryTimeout)
	}
	if cfg.TelemetryWorkers != 8 {
		t.Errorf("TelemetryWorkers = %d", cfg.TelemetryWorkers)
	}
	if got := strings.Join(cfg.AllowedOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("AllowedOrigins = %q", got)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("QUERY_TIMEOUT", "soon")
	t.Setenv("TELEMETRY_WORKERS", "-1")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"QUERY_TIMEOUT", "TELEMETRY_WORKERS"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}
