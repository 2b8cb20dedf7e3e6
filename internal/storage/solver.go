package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

// JournaledSolver records every call to the wrapped solver in a Journal.
// Journal failures are logged and never change the solver's result.
type JournaledSolver struct {
	next    solver.Solver
	journal *Journal
	url     string
	logger  *slog.Logger
}

// NewJournaledSolver wraps next. url is stored with each entry.
func NewJournaledSolver(next solver.Solver, journal *Journal, url string, logger *slog.Logger) *JournaledSolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &JournaledSolver{next: next, journal: journal, url: url, logger: logger}
}

// GetSolution calls the wrapped solver and records the outcome.
func (s *JournaledSolver) GetSolution(ctx context.Context, facelets string) (string, error) {
	start := time.Now()
	solution, err := s.next.GetSolution(ctx, facelets)

	e := Entry{
		CreatedAt: start,
		SolverURL: s.url,
		Facelets:  facelets,
		Duration:  time.Since(start),
	}
	if err != nil {
		kind, msg := solver.Kind(err), err.Error()
		e.ErrorKind, e.ErrorMessage = &kind, &msg
	} else {
		e.Solution = &solution
	}

	id, jerr := s.journal.Record(e)
	if jerr != nil {
		s.logger.WarnContext(ctx, "failed to journal solve", "error", jerr)
	} else {
		s.logger.DebugContext(ctx, "journaled solve", "request_id", id, "error_kind", solver.Kind(err))
	}

	return solution, err
}
