package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DecisionInterval != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Beliefs.Breakpoints.Low != 0.3 || cfg.Beliefs.Breakpoints.High != 0.6 {
		t.Fatalf("unexpected default breakpoints: %+v", cfg.Beliefs.Breakpoints)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"addr": ":9000", "decision_interval": 5}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Fatalf("expected addr :9000, got %s", cfg.Addr)
	}
	if cfg.DecisionInterval != 5 {
		t.Fatalf("expected interval 5, got %d", cfg.DecisionInterval)
	}
	// Untouched fields keep their defaults.
	if cfg.DBPath != "frog_tutor.db" {
		t.Fatalf("expected default db path, got %s", cfg.DBPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"db_path": "from_file.db"}`)
	t.Setenv("FROG_DB", "from_env.db")
	t.Setenv("FROG_ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "from_env.db" {
		t.Fatalf("expected env db path, got %s", cfg.DBPath)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("expected env addr, got %s", cfg.Addr)
	}
}

func TestMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestInvalidIntervalRejected(t *testing.T) {
	path := writeConfig(t, `{"decision_interval": 0}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero decision interval")
	}
}

func TestInvalidBreakpointsRejected(t *testing.T) {
	path := writeConfig(t, `{"beliefs": {"breakpoints": {"low": 0.8, "high": 0.4}}}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for inverted breakpoints")
	}
}
