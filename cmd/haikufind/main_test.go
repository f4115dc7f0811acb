package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"haikufind/internal/haiku"
)

const testHaikuLyrics = "An old silent pond\nA frog jumps into the pond\nSplash! Silence again"

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(base, "data") + `"`,
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lyrics.csv")
	content := "title,artist,lyrics\n" + `Old Pond,Basho,"` + testHaikuLyrics + `"` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	configPath := writeTestConfig(t)
	out, _, err := runCLI(t, configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestScanThenPostDryRun(t *testing.T) {
	configPath := writeTestConfig(t)
	csvPath := writeTestCSV(t)

	out, _, err := runCLI(t, configPath, "scan", "--csv", csvPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "1 haiku found")
	requireContains(t, out, "1 newly cached")

	out, _, err = runCLI(t, configPath, "post", "--dry-run")
	if err != nil {
		t.Fatalf("post --dry-run: %v", err)
	}
	requireContains(t, out, "An old silent pond")
	requireContains(t, out, "— Old Pond by Basho")
	requireContains(t, out, "Marked as used")

	out, _, err = runCLI(t, configPath, "post", "--dry-run")
	if err != nil {
		t.Fatalf("second post: %v", err)
	}
	requireContains(t, out, "No unused haiku found")
}

func TestPostWithoutPublisherFails(t *testing.T) {
	configPath := writeTestConfig(t)
	csvPath := writeTestCSV(t)

	if _, _, err := runCLI(t, configPath, "scan", "--csv", csvPath); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if _, _, err := runCLI(t, configPath, "post"); err == nil {
		t.Fatal("post without an enabled publisher should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	configPath := writeTestConfig(t)
	csvPath := writeTestCSV(t)

	if _, _, err := runCLI(t, configPath, "scan", "--csv", csvPath); err != nil {
		t.Fatalf("scan: %v", err)
	}

	out, _, err := runCLI(t, configPath, "cache", "list")
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "Old Pond")
	requireContains(t, out, "unused")

	out, _, err = runCLI(t, configPath, "cache", "stats")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Total")

	out, _, err = runCLI(t, configPath, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 1 cached haiku")

	out, _, err = runCLI(t, configPath, "cache", "list")
	if err != nil {
		t.Fatalf("cache list after clear: %v", err)
	}
	requireContains(t, out, "Cache is empty")
}

func testHaikuSignature() string {
	lines := strings.Split(testHaikuLyrics, "\n")
	h := haiku.Haiku{
		Title:  "Old Pond",
		Artist: "Basho",
		Lines:  [3]string{lines[0], lines[1], lines[2]},
	}
	return h.Signature()
}

func TestCacheShow(t *testing.T) {
	configPath := writeTestConfig(t)
	csvPath := writeTestCSV(t)

	if _, _, err := runCLI(t, configPath, "scan", "--csv", csvPath); err != nil {
		t.Fatalf("scan: %v", err)
	}

	sig := testHaikuSignature()
	out, _, err := runCLI(t, configPath, "cache", "show", sig)
	if err != nil {
		t.Fatalf("cache show: %v", err)
	}
	requireContains(t, out, "An old silent pond")
	requireContains(t, out, "Old Pond")
	requireContains(t, out, "unused")

	// The 12-character prefix printed by `cache list` resolves too.
	out, _, err = runCLI(t, configPath, "cache", "show", sig[:12])
	if err != nil {
		t.Fatalf("cache show by prefix: %v", err)
	}
	requireContains(t, out, "Basho")

	if _, _, err := runCLI(t, configPath, "cache", "show", "0000000000"); err == nil {
		t.Fatal("show of an unknown signature should fail")
	}
}

func TestScanMissingCSV(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, _, err := runCLI(t, configPath, "scan", "--csv", filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("scan of a missing csv should fail")
	}
}
