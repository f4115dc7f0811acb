package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"haikufind/internal/config"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := config.Default()
	if cfg.Scanner.CSVPath != "lyrics.csv" {
		t.Errorf("unexpected default csv path: %q", cfg.Scanner.CSVPath)
	}
	if !cfg.Publisher.Attribution {
		t.Error("attribution should default to enabled")
	}
	if cfg.Publisher.Enabled {
		t.Error("publisher should default to disabled")
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[scanner]",
		`csv_path = "songs.csv"`,
		"[publisher]",
		"enabled = true",
		`bearer_token = "token"`,
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Scanner.CSVPath != "songs.csv" {
		t.Errorf("csv_path = %q", cfg.Scanner.CSVPath)
	}
	if !cfg.Publisher.Enabled || cfg.Publisher.BearerToken != "token" {
		t.Errorf("publisher not decoded: %+v", cfg.Publisher)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging not decoded: %+v", cfg.Logging)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "haiku_cache.db") {
		t.Errorf("database path = %q", cfg.DatabasePath())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if cfg.Publisher.Endpoint == "" {
		t.Error("defaults were not applied")
	}
}

func TestLoadRejectsBadEndpoint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[publisher]\nendpoint = \"::notaurl\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad endpoint")
	}
}

func TestBearerTokenFromEnvironment(t *testing.T) {
	t.Setenv("HAIKUFIND_BEARER_TOKEN", "env-token")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Publisher.BearerToken != "env-token" {
		t.Errorf("bearer token = %q, want env fallback", cfg.Publisher.BearerToken)
	}
}

func TestDryRunFromEnvironment(t *testing.T) {
	t.Setenv("HAIKUFIND_DRY_RUN", "true")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Publisher.DryRun {
		t.Error("dry_run env fallback not applied")
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[publisher]") {
		t.Error("sample config missing publisher section")
	}
}
