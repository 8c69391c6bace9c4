package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jfaure/tasklist/list"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
dir = "/tmp/lists"
default-priority = "medium"
editor = "nano"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dir != "/tmp/lists" {
		t.Errorf("expected dir '/tmp/lists', got %q", cfg.Dir)
	}
	if cfg.DefaultPriority != "medium" {
		t.Errorf("expected default-priority 'medium', got %q", cfg.DefaultPriority)
	}
	if cfg.Editor != "nano" {
		t.Errorf("expected editor 'nano', got %q", cfg.Editor)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected missing config to load as zero value, got %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "dir = [broken")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile_InvalidPriority(t *testing.T) {
	path := writeConfig(t, `default-priority = "p1"`)
	if _, err := LoadFile(path); !errors.Is(err, list.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `dir = "elsewhere"`)
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dir != "elsewhere" {
		t.Errorf("expected dir 'elsewhere', got %q", cfg.Dir)
	}
}
