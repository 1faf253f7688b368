package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "memory"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Database.Driver != "memory" {
		t.Errorf("expected memory driver default, got %q", cfg.Database.Driver)
	}
	if cfg.Database.KeyPrefix != "minutesearch:" {
		t.Errorf("unexpected key prefix default: %q", cfg.Database.KeyPrefix)
	}
	if cfg.Search.ContextWindowChars != 50 {
		t.Errorf("unexpected context window default: %d", cfg.Search.ContextWindowChars)
	}
	if cfg.Search.MaxFacetValues != 20 {
		t.Errorf("unexpected facet cap default: %d", cfg.Search.MaxFacetValues)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected shutdown default: %d", cfg.HTTP.ShutdownSec)
	}
}

func TestValidate_Port(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestValidate_Driver(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory driver must validate, got %v", err)
	}

	cfg.Database.Driver = "redis"
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Error("redis driver without addrs must fail")
	}

	cfg.Database.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("redis driver with addrs must validate, got %v", err)
	}

	cfg.Database.Driver = "cassandra"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestValidate_FieldWeights(t *testing.T) {
	cfg := validConfig()
	cfg.Search.FieldWeights = map[string]float64{"meeting.title": 0.8}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("in-range weight must validate, got %v", err)
	}

	cfg.Search.FieldWeights["minutes.summary"] = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for weight above 1")
	}

	cfg.Search.FieldWeights = map[string]float64{"meeting.title": 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero weight")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MS_TEST_PORT", "9090")

	data := expandEnvVars([]byte("port: ${MS_TEST_PORT}\nprefix: ${MS_TEST_MISSING:-fallback:}"))
	out := string(data)

	if !strings.Contains(out, "port: 9090") {
		t.Errorf("expected env substitution, got %q", out)
	}
	if !strings.Contains(out, "prefix: fallback:") {
		t.Errorf("expected default substitution, got %q", out)
	}
}
