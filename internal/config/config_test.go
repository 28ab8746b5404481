package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitBilldeskDirSeedsConfig(t *testing.T) {
	dir := t.TempDir()
	if err := InitBilldeskDir(dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, BilldeskDir, "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, BilldeskDir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if !strings.Contains(string(data), "base_url") {
		t.Fatalf("seeded config lacks base_url:\n%s", data)
	}
}

func TestInitBilldeskDirKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BilldeskDir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	custom := "version: 1\napi:\n  base_url: http://example.com/api\n"
	if err := os.WriteFile(filepath.Join(path, "config.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := InitBilldeskDir(dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(path, "config.yaml"))
	if string(data) != custom {
		t.Fatalf("existing config was overwritten")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	cfg, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if got := cfg.APIBaseURL(); got != "http://localhost:8000/api/inventory" {
		t.Fatalf("base url = %s", got)
	}
	if got := cfg.CurrencySymbol(); got != "₹" {
		t.Fatalf("currency = %s", got)
	}
}

func TestNewConfigReadsProjectFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, BilldeskDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "version: 1\napi:\n  base_url: https://shop.example.com/api/inventory/\nbilling:\n  currency_symbol: \"$\"\n"
	if err := os.WriteFile(filepath.Join(dir, BilldeskDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := NewConfig(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	// Trailing slash is normalized away.
	if got := cfg.APIBaseURL(); got != "https://shop.example.com/api/inventory" {
		t.Fatalf("base url = %s", got)
	}
	if got := cfg.CurrencySymbol(); got != "$" {
		t.Fatalf("currency = %s", got)
	}
}

func TestEnvOverrideBeatsProjectFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, BilldeskDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "version: 1\napi:\n  base_url: http://from-file:8000/api\n"
	if err := os.WriteFile(filepath.Join(dir, BilldeskDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvBaseURL, "http://from-env:9000/api/")
	cfg, err := NewConfig(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if got := cfg.APIBaseURL(); got != "http://from-env:9000/api" {
		t.Fatalf("base url = %s", got)
	}
}

func TestNewConfigRejectsBadScheme(t *testing.T) {
	t.Setenv(EnvBaseURL, "ftp://host/api")
	if _, err := NewConfig(t.TempDir()); err == nil {
		t.Fatalf("expected validation failure for ftp scheme")
	}
}

func TestNewConfigRejectsBrokenYAML(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, BilldeskDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, BilldeskDir, "config.yaml"), []byte("api: [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewConfig(dir); err == nil {
		t.Fatalf("expected parse failure")
	}
}
