// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/config"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	solverURL string
	timeout   time.Duration
	noJournal bool
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Interactive cube with a remote solver",
	Long: `cubesolver - turn a virtual cube in the terminal, scramble it, and let an
external solving service find a solution that is then played back move by move.

The solver is reached over HTTP (default http://127.0.0.1:5000/solve). Every
solver call is kept in a local journal unless --no-journal is given.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Journal database path (default: ~/.gocube_solver/journal.db)")
	rootCmd.PersistentFlags().StringVar(&solverURL, "solver-url", "", "Solver endpoint (default: $CUBESOLVER_SOLVER_URL or "+solver.DefaultURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Solver request timeout (default: $CUBESOLVER_TIMEOUT or 10s)")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Do not record solver calls")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads .env files and the environment, then applies flags on top.
func loadConfig() (config.Config, error) {
	envFiles := []string{".env"}
	if dir, err := config.AppDir(); err == nil {
		envFiles = append(envFiles, filepath.Join(dir, "config.env"))
	}
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("solver-url") {
		cfg.SolverURL = solverURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// openLogFile creates a JSONL log under ~/.gocube_solver/logs for commands
// that own the terminal.
func openLogFile(prefix string) (*os.File, error) {
	dir, err := config.AppDir()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.jsonl", prefix, time.Now().Format("2006-01-02_15-04-05"))
	f, err := os.Create(filepath.Join(logDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}

// newSolver builds the HTTP solver client, journaled unless disabled. The
// returned func releases the journal. A journal that cannot be opened is
// logged and skipped.
func newSolver(cfg config.Config, logger *slog.Logger) (solver.Solver, func()) {
	client := solver.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.SolverURL, logger)
	if noJournal {
		return client, func() {}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("journal disabled", "error", err)
		return client, func() {}
	}

	journaled := storage.NewJournaledSolver(client, storage.NewJournal(db), client.URL(), logger)
	return journaled, func() { db.Close() }
}
