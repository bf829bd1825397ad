package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TanukiSharp/OrbitalCamera/pkg/camera"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Camera defaults must agree with the controller's own defaults.
	if cfg.Camera.Options() != camera.DefaultOptions() {
		t.Errorf("camera defaults diverged: %+v vs %+v", cfg.Camera.Options(), camera.DefaultOptions())
	}
	if cfg.Camera.Position == cfg.Camera.Target {
		t.Error("default position must not coincide with target")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  position: [0, 5, 20]
  rotation_ratio: 0.02
  zoom_ratio: 0.01

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("graphics size = %dx%d, want 1920x1080", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true from file")
	}
	if cfg.Camera.Position != [3]float64{0, 5, 20} {
		t.Errorf("camera position = %v, want [0 5 20]", cfg.Camera.Position)
	}
	if cfg.Camera.RotationRatio != 0.02 {
		t.Errorf("rotation_ratio = %v, want 0.02", cfg.Camera.RotationRatio)
	}
	if cfg.Camera.ZoomRatio != 0.01 {
		t.Errorf("zoom_ratio = %v, want 0.01", cfg.Camera.ZoomRatio)
	}

	// Values absent from the file keep their defaults.
	if cfg.Camera.MoveRatio != camera.DefaultOptions().MoveRatio {
		t.Errorf("move_ratio = %v, want default %v", cfg.Camera.MoveRatio, camera.DefaultOptions().MoveRatio)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Camera.RotationRatio = 0.05

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	reloaded := Default()
	if err := loadFromFile(reloaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if reloaded.Graphics.Width != 800 {
		t.Errorf("reloaded width = %d, want 800", reloaded.Graphics.Width)
	}
	if reloaded.Camera.RotationRatio != 0.05 {
		t.Errorf("reloaded rotation_ratio = %v, want 0.05", reloaded.Camera.RotationRatio)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
