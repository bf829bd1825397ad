package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			opts := DefaultOptions()
			opts.Level = tt.level
			opts.File = logFile
			opts.Console = false
			opts.Compress = false

			if err := InitWithOptions(opts); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Level != "info" {
		t.Errorf("expected level info, got %s", opts.Level)
	}
	if !opts.Console {
		t.Error("expected console output enabled by default")
	}
	if opts.File != "" {
		t.Errorf("expected no file output by default, got %s", opts.File)
	}
	if opts.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", opts.MaxSizeMB)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "fallback.log")

	opts := DefaultOptions()
	opts.Level = "chatty"
	opts.File = logFile
	opts.Console = false

	if err := InitWithOptions(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("debug message")
	Info("info message")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "DEBUG") {
		t.Error("unknown level should not enable debug output")
	}
	if !strings.Contains(string(content), "INFO") {
		t.Error("unknown level should still log info")
	}
}
