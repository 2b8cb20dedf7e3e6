// Package controller connects user actions to the cube and the solver.
//
// A Controller owns the move history, the status line and the enabled state
// of the controls. It is not safe for concurrent use; the terminal UI calls
// it from its update loop only.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

// DefaultScrambleLength is the number of random moves issued by Scramble.
const DefaultScrambleLength = 25

// Status texts shown while solving.
const (
	StatusReading     = "Reading cube state..."
	StatusReadFailed  = "Error reading cube state. Please try again."
	StatusConnecting  = "Connecting to solver..."
	statusErrorPrefix = "Error: "
	statusSolvedFmt   = "Solution found! Executing: "
)

// ErrBusy is returned by BeginSolve while controls are disabled or the cube is turning.
var ErrBusy = errors.New("controller: busy")

// Cube is the part of *gocube.Cube the controller drives.
type Cube interface {
	PerformMove(name string)
	IsAnimating() bool
	FaceletString() string
	SetIdleCallback(fn func())
}

// RNG picks scramble moves.
type RNG interface {
	IntN(n int) int
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) }

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the source used to pick scramble moves.
func WithRand(rng RNG) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithScrambleLength overrides DefaultScrambleLength.
func WithScrambleLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithLogger sets the logger for solve requests and results.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns the move buttons, the move history and the solve flow for
// one cube.
type Controller struct {
	cube   Cube
	solver solver.Solver
	logger *slog.Logger

	rng            RNG
	scrambleLength int

	buttons      []string
	history      []string
	lastScramble []string
	status       string
	enabled      bool
	awaitingIdle bool
}

// New creates a controller and registers it as the cube's idle listener.
func New(cube Cube, s solver.Solver, opts ...Option) *Controller {
	c := &Controller{
		cube:           cube,
		solver:         s,
		logger:         slog.Default(),
		rng:            stdRNG{},
		scrambleLength: DefaultScrambleLength,
		buttons:        gocube.MoveNames(),
		enabled:        true,
	}
	for _, opt := range opts {
		opt(c)
	}
	cube.SetIdleCallback(c.onIdle)
	return c
}

// Buttons returns one control per move, in move table order.
func (c *Controller) Buttons() []string {
	out := make([]string, len(c.buttons))
	copy(out, c.buttons)
	return out
}

// Press performs the named move and logs it. It does nothing while controls
// are disabled or the cube is turning, and reports whether the move was issued.
func (c *Controller) Press(name string) bool {
	if !c.ready() || !gocube.IsMove(name) {
		return false
	}
	c.history = append(c.history, name)
	c.cube.PerformMove(name)
	return true
}

// Scramble clears the history and queues random moves, repeats allowed.
// It returns the moves issued, or nil when the controller is busy.
func (c *Controller) Scramble() []string {
	if !c.ready() {
		return nil
	}

	c.history = nil
	moves := make([]string, c.scrambleLength)
	for i := range moves {
		moves[i] = c.buttons[c.rng.IntN(len(c.buttons))]
		c.cube.PerformMove(moves[i])
	}
	c.lastScramble = moves

	c.logger.Debug("scrambled", "moves", strings.Join(moves, " "))
	return moves
}

// BeginSolve disables the controls and samples the cube. A reading with
// error tokens re-enables them and returns gocube.ErrUnreadableState.
func (c *Controller) BeginSolve() (string, error) {
	if !c.ready() {
		return "", ErrBusy
	}

	c.enabled = false
	c.status = StatusReading

	facelets := c.cube.FaceletString()
	if !gocube.FaceletsValid(facelets) {
		c.logger.Warn("unreadable cube state", "facelets", facelets)
		c.status = StatusReadFailed
		c.enabled = true
		return "", gocube.ErrUnreadableState
	}

	c.status = StatusConnecting
	return facelets, nil
}

// CompleteSolve reports the solver's answer. On success the history is
// cleared and each solution token is queued, half turns as two quarter
// turns. Controls come back once the cube is idle.
func (c *Controller) CompleteSolve(solution string, err error) {
	if err != nil {
		c.logger.Warn("solve failed", "error", err, "kind", solver.Kind(err))
		c.status = statusErrorPrefix + err.Error()
	} else {
		c.history = nil
		c.status = statusSolvedFmt + solution
		moves := gocube.ExpandSequence(solution)
		c.logger.Info("executing solution", "solution", solution, "quarter_turns", len(moves))
		for _, m := range moves {
			c.cube.PerformMove(m)
		}
	}

	if c.cube.IsAnimating() {
		c.awaitingIdle = true
		return
	}
	c.enabled = true
}

// Solve runs BeginSolve, the solver call and CompleteSolve in sequence.
func (c *Controller) Solve(ctx context.Context) error {
	facelets, err := c.BeginSolve()
	if err != nil {
		return err
	}
	solution, err := c.solver.GetSolution(ctx, facelets)
	c.CompleteSolve(solution, err)
	return err
}

func (c *Controller) onIdle() {
	if c.awaitingIdle {
		c.awaitingIdle = false
		c.enabled = true
	}
}

func (c *Controller) ready() bool {
	return c.enabled && !c.cube.IsAnimating()
}

// History returns the moves pressed since the last scramble or solve.
func (c *Controller) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryText returns the history as a space-separated sequence.
func (c *Controller) HistoryText() string {
	return strings.Join(c.history, " ")
}

// Status returns the current status line, empty until a solve starts.
func (c *Controller) Status() string {
	return c.status
}

// Enabled reports whether the controls accept input. It is false during a
// solve, including while the solution is being played back.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// LastScramble returns the moves issued by the most recent Scramble.
func (c *Controller) LastScramble() []string {
	out := make([]string, len(c.lastScramble))
	copy(out, c.lastScramble)
	return out
}
