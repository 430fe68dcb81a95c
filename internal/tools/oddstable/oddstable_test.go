package oddstable

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("odds-table", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Lang != "en" || cfg.Units != defaultUnits || cfg.Preset != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigOverride(t *testing.T) {
	fs := flag.NewFlagSet("odds-table", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-lang", "pt-BR", "-units", "3", "-preset", "bunker"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Lang != "pt-BR" || cfg.Units != 3 || cfg.Preset != "bunker" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRunClassicEnglish(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Lang: "en", Units: 2, Preset: "classic"}, buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Round odds: classic (defender bonus: none)",
		"Attacker wins",
		"37.17",
		"Battle odds: classic",
		"41.67/0.58",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "bunker") {
		t.Errorf("expected only the classic preset:\n%s", out)
	}
}

func TestRunPortuguese(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Lang: "pt-BR", Units: 1, Preset: "ammo_shortage"}, buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Chances por rodada: ammo_shortage (bônus do defensor: -1)") {
		t.Fatalf("expected portuguese title:\n%s", out)
	}
	if !strings.Contains(out, "Vitória do atacante") {
		t.Fatalf("expected portuguese header:\n%s", out)
	}
}

func TestRunAllPresets(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Lang: "fr", Units: 1}, buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, name := range []string{"classic", "bunker", "fortification", "ammo_shortage"} {
		if !strings.Contains(out, "Round odds: "+name) {
			t.Errorf("missing preset %q", name)
		}
	}
	if !strings.Contains(out, "+1, +1") {
		t.Errorf("expected fortification bonus label:\n%s", out)
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		out  *bytes.Buffer
	}{
		{"nil output", Config{Units: 1}, nil},
		{"zero units", Config{Units: 0}, &bytes.Buffer{}},
		{"bad language", Config{Lang: "!!", Units: 1}, &bytes.Buffer{}},
		{"unknown preset", Config{Units: 1, Preset: "siege"}, &bytes.Buffer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.out == nil {
				err = Run(tt.cfg, nil)
			} else {
				err = Run(tt.cfg, tt.out)
			}
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
