package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("debug message", "stage", "flatten")
	Info("info message")
	Warn("warning message")
	Error("error message")
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	if child := With("component", "resolver"); child == nil {
		t.Error("With() returned nil for an initialized logger")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// None of these may panic on a nil logger
	Debug("debug message")
	Info("info message")
	Warn("warning message")
	Error("error message")

	if child := With("k", "v"); child != nil {
		t.Error("With() should return nil when the logger is not initialized")
	}
}
