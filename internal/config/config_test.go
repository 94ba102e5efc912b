package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SortOnChange {
		t.Error("SortOnChange should default to false")
	}
	if cfg.DeleteEnabled {
		t.Error("DeleteEnabled should default to false")
	}
	if cfg.DefaultPosition != 0.5 {
		t.Errorf("DefaultPosition = %v, want 0.5", cfg.DefaultPosition)
	}
}

func TestLoad_Values(t *testing.T) {
	dir := t.TempDir()
	content := `
sort_on_change = true
delete_enabled = true
default_position = 0.25
state_dir = "/tmp/ramps-state"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.SortOnChange {
		t.Error("SortOnChange should be true")
	}
	if !cfg.DeleteEnabled {
		t.Error("DeleteEnabled should be true")
	}
	if cfg.DefaultPosition != 0.25 {
		t.Errorf("DefaultPosition = %v, want 0.25", cfg.DefaultPosition)
	}
	if cfg.StateDir != "/tmp/ramps-state" {
		t.Errorf("StateDir = %q, want /tmp/ramps-state", cfg.StateDir)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for malformed config, got nil")
	}
}

func TestWithStateDir(t *testing.T) {
	p := DefaultPaths().WithStateDir("/custom/state")

	if p.StateDir != "/custom/state" {
		t.Errorf("StateDir = %q, want /custom/state", p.StateDir)
	}
	if p.RampsDir != filepath.Join("/custom/state", "ramps") {
		t.Errorf("RampsDir = %q, want under state dir", p.RampsDir)
	}
}
