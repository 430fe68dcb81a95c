package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	MaxUnits int    `env:"TEST_MAX_UNITS" envDefault:"1000"`
	Addr     string `env:"TEST_ADDR" envDefault:"localhost:8090"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.MaxUnits != 1000 {
		t.Fatalf("expected default max units 1000, got %d", cfg.MaxUnits)
	}
	if cfg.Addr != "localhost:8090" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("RISKODDS_TEST_ADDR", "127.0.0.1:9999")
	t.Setenv("TEST_MAX_UNITS", "5")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Fatalf("expected prefixed addr, got %q", cfg.Addr)
	}
	if cfg.MaxUnits != 1000 {
		t.Fatalf("expected unprefixed variable to be ignored, got %d", cfg.MaxUnits)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RISKODDS_TEST_MAX_UNITS", "lots")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
