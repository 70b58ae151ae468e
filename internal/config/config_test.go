package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Data.RecordsPath == "" {
		t.Error("default records path should not be empty")
	}
	if cfg.SSH.Port == 0 {
		t.Error("default SSH port should not be zero")
	}
	if !cfg.UI.Color {
		t.Error("color should default to on")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parking.yaml")
	data := `
data:
  levels_path: "/tmp/levels.txt"
  records_path: "/tmp/records.txt"
ssh:
  port: 2222
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Data.LevelsPath != "/tmp/levels.txt" {
		t.Errorf("LevelsPath = %q; want /tmp/levels.txt", cfg.Data.LevelsPath)
	}
	if cfg.SSH.Port != 2222 {
		t.Errorf("SSH.Port = %d; want 2222", cfg.SSH.Port)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for an explicit missing path")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got := ExpandPath("~/.parking/records.txt")
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandPath() = %q; want prefix %q", got, home)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
