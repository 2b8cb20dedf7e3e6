// Package config loads runtime settings for the cubesolver commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

// AppDirName is the directory under the user's home that holds the journal and logs.
const AppDirName = ".gocube_solver"

// Config holds the settings shared by every command.
type Config struct {
	SolverURL    string
	Timeout      time.Duration
	DBPath       string
	LogLevel     slog.Level
	TurnDuration time.Duration
	FPS          int
}

// Load reads CUBESOLVER_* variables from the environment, falling back to
// defaults, and rejects malformed values.
func Load() (Config, error) {
	c := Config{
		SolverURL:    envOr("CUBESOLVER_SOLVER_URL", solver.DefaultURL),
		DBPath:       os.Getenv("CUBESOLVER_DB"),
		Timeout:      10 * time.Second,
		TurnDuration: gocube.DefaultTurnDuration,
		FPS:          60,
	}

	if v := os.Getenv("CUBESOLVER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CUBESOLVER_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = d
	}

	if v := os.Getenv("CUBESOLVER_TURN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CUBESOLVER_TURN_DURATION %q: %w", v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid CUBESOLVER_TURN_DURATION %q: must not be negative", v)
		}
		c.TurnDuration = d
	}

	if v := os.Getenv("CUBESOLVER_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid CUBESOLVER_FPS %q", v)
		}
		c.FPS = n
	}

	level, err := parseLogLevel(envOr("CUBESOLVER_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// FrameInterval returns the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// AppDir returns ~/.gocube_solver, creating it when missing.
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// LoadEnvFiles reads KEY=value files into the environment before Load.
// Variables already set win over file entries. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid CUBESOLVER_LOG_LEVEL %q", s)
	}
}
