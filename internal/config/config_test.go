package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"CUBESOLVER_SOLVER_URL", "CUBESOLVER_TIMEOUT", "CUBESOLVER_DB",
		"CUBESOLVER_LOG_LEVEL", "CUBESOLVER_TURN_DURATION", "CUBESOLVER_FPS",
	} {
		t.Setenv(k, "")
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.SolverURL != solver.DefaultURL {
		t.Errorf("expected default solver URL, got %q", c.SolverURL)
	}
	if c.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", c.Timeout)
	}
	if c.TurnDuration != 400*time.Millisecond {
		t.Errorf("expected 400ms turns, got %v", c.TurnDuration)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", c.LogLevel)
	}
	if c.FrameInterval() != time.Second/60 {
		t.Errorf("unexpected frame interval %v", c.FrameInterval())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBESOLVER_SOLVER_URL", "http://solver.local/solve")
	t.Setenv("CUBESOLVER_TIMEOUT", "3s")
	t.Setenv("CUBESOLVER_DB", "/tmp/journal.db")
	t.Setenv("CUBESOLVER_LOG_LEVEL", "DEBUG")
	t.Setenv("CUBESOLVER_TURN_DURATION", "150ms")
	t.Setenv("CUBESOLVER_FPS", "30")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.SolverURL != "http://solver.local/solve" || c.DBPath != "/tmp/journal.db" {
		t.Errorf("unexpected config %+v", c)
	}
	if c.Timeout != 3*time.Second || c.TurnDuration != 150*time.Millisecond {
		t.Errorf("unexpected durations %+v", c)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", c.LogLevel)
	}
	if c.FPS != 30 {
		t.Errorf("expected 30 fps, got %d", c.FPS)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CUBESOLVER_TIMEOUT", "soon"},
		{"CUBESOLVER_TURN_DURATION", "-1s"},
		{"CUBESOLVER_FPS", "0"},
		{"CUBESOLVER_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubesolver.env")
	content := "CUBESOLVER_FPS=24\nCUBESOLVER_SOLVER_URL=http://from-file/solve\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CUBESOLVER_FPS", "")
	os.Unsetenv("CUBESOLVER_FPS")
	t.Setenv("CUBESOLVER_SOLVER_URL", "http://from-env/solve")

	if err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.FPS != 24 {
		t.Errorf("expected fps from file, got %d", c.FPS)
	}
	if c.SolverURL != "http://from-env/solve" {
		t.Errorf("environment should win over the file, got %q", c.SolverURL)
	}
}
