package odds

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("RISKODDS_ODDS_ADDR", "")
	fs := flag.NewFlagSet("odds", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:8090" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "data/odds.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.MaxUnits != 1000 {
		t.Fatalf("expected default max units, got %d", cfg.MaxUnits)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("RISKODDS_ODDS_ADDR", "env-addr:1")
	t.Setenv("RISKODDS_ODDS_MAX_UNITS", "50")
	fs := flag.NewFlagSet("odds", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "flag-addr:2", "-db-path", ""})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "flag-addr:2" {
		t.Fatalf("expected flag addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected empty db path, got %q", cfg.DBPath)
	}
	if cfg.MaxUnits != 50 {
		t.Fatalf("expected env max units, got %d", cfg.MaxUnits)
	}
}

func TestParseConfigRejectsNonPositiveMaxUnits(t *testing.T) {
	fs := flag.NewFlagSet("odds", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-max-units", "0"}); err == nil {
		t.Fatal("expected error for zero max units")
	}
}
