package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsWithNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("got log level %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "console" {
		t.Fatalf("got log format %q, want %q", cfg.Log.Format, "console")
	}
	if cfg.Train.MaxSubwords != DefaultMaxSubwords {
		t.Fatalf("got max_subwords %d, want %d", cfg.Train.MaxSubwords, DefaultMaxSubwords)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := writeTempConfig(t, "log:\n  level: debug\ntrain:\n  max_subwords: 500\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("got log level %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Train.MaxSubwords != 500 {
		t.Fatalf("got max_subwords %d, want %d", cfg.Train.MaxSubwords, 500)
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DPBPE_TRAIN_MAX_SUBWORDS", "42")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Train.MaxSubwords != 42 {
		t.Fatalf("got max_subwords %d, want %d", cfg.Train.MaxSubwords, 42)
	}
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "verbose"
	cfg.Log.Format = "console"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown log level")
	}
}

func TestValidateRejectsNegativeBudget(t *testing.T) {
	cfg := &Config{}
	cfg.Train.MaxSubwords = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for a negative max_subwords")
	}
}
