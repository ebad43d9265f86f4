package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NoConfigFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Dir != "" || cfg.Defaults.Priority != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "taskflow", "config.toml"), `
[defaults]
priority = "high"
category = "design"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Priority != "high" {
		t.Errorf("expected priority 'high', got %q", cfg.Defaults.Priority)
	}
	if cfg.Defaults.Category != "design" {
		t.Errorf("expected category 'design', got %q", cfg.Defaults.Category)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "taskflow", "config.toml"), `
[defaults]
priority = "high"
category = "design"

[display]
date-layout = "2006-01-02"
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "taskflow.toml"), `
[defaults]
priority = "low"
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Project value wins where defined; global fills the rest.
	if cfg.Defaults.Priority != "low" {
		t.Errorf("expected priority 'low', got %q", cfg.Defaults.Priority)
	}
	if cfg.Defaults.Category != "design" {
		t.Errorf("expected category 'design', got %q", cfg.Defaults.Category)
	}
	if cfg.Display.DateLayout != "2006-01-02" {
		t.Errorf("expected date layout from global, got %q", cfg.Display.DateLayout)
	}
}

func TestLoad_MalformedProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "taskflow.toml"), `[defaults`)

	if _, err := Load(project); err == nil {
		t.Error("expected parse error for malformed config")
	}
}
