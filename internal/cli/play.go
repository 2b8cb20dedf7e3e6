package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/ble"
	"github.com/SeamusWaldron/gocube_solver/internal/controller"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

var playSmartCube bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube with scramble and solve",
	Long: `Start an interactive TUI showing the cube as an unfolded net.

Keyboard shortcuts:
  u d l r f b   - Turn a face clockwise
  U D L R F B   - Turn a face counter-clockwise
  s             - Scramble (25 random moves)
  enter         - Solve: read the cube, ask the solver, play the solution
  q/Esc         - Quit

With --smartcube, turns of a connected GoCube are mirrored on screen.
Logs are written to ~/.gocube_solver/logs.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playSmartCube, "smartcube", false, "Mirror a GoCube smart cube over Bluetooth")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile("play")
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg)

	s, closeSolver := newSolver(cfg, logger)
	defer closeSolver()

	cube := gocube.NewCube(gocube.WithTurnDuration(cfg.TurnDuration))
	ctrl := controller.New(cube, s, controller.WithLogger(logger))

	model := newPlayModel(cube, ctrl, s, cfg.FrameInterval(), logger)
	model.smartCube = playSmartCube

	logger.Info("play started", "solver_url", cfg.SolverURL, "fps", cfg.FPS, "smartcube", playSmartCube)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fmt.Printf("Log saved to: %s\n", logFile.Name())
	return nil
}

// keyMoves binds keys to move buttons: lowercase turns clockwise.
var keyMoves = map[string]string{
	"u": "U", "U": "U'",
	"d": "D", "D": "D'",
	"l": "L", "L": "L'",
	"r": "R", "R": "R'",
	"f": "F", "F": "F'",
	"b": "B", "B": "B'",
}

// Messages
type frameMsg time.Time
type solveResultMsg struct {
	solution string
	err      error
}
type bleConnectedMsg struct {
	client *ble.Client
	name   string
}
type bleErrorMsg struct{ err error }
type bleMovesMsg struct{ moves []string }

type playModel struct {
	cube   *gocube.Cube
	ctrl   *controller.Controller
	solver solver.Solver
	logger *slog.Logger

	frame     time.Duration
	lastFrame time.Time

	// Smart cube
	smartCube bool
	client    *ble.Client
	bleStatus string
	bleMoves  chan []string
	physical  []string

	// UI
	width    int
	height   int
	quitting bool
}

func newPlayModel(cube *gocube.Cube, ctrl *controller.Controller, s solver.Solver, frame time.Duration, logger *slog.Logger) *playModel {
	return &playModel{
		cube:     cube,
		ctrl:     ctrl,
		solver:   s,
		logger:   logger,
		frame:    frame,
		bleMoves: make(chan []string, 100),
	}
}

func (m *playModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.frameCmd()}
	if m.smartCube {
		m.bleStatus = "Scanning for GoCube..."
		cmds = append(cmds, m.connectBLE(), m.listenForMoves())
	}
	return tea.Batch(cmds...)
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) listenForMoves() tea.Cmd {
	return func() tea.Msg {
		return bleMovesMsg{moves: <-m.bleMoves}
	}
}

func (m *playModel) solveCmd(facelets string) tea.Cmd {
	return func() tea.Msg {
		solution, err := m.solver.GetSolution(context.Background(), facelets)
		return solveResultMsg{solution: solution, err: err}
	}
}

func (m *playModel) connectBLE() tea.Cmd {
	return func() tea.Msg {
		client, results, err := scanForGoCube(context.Background(), m.logger)
		if err != nil {
			return bleErrorMsg{err: err}
		}
		if len(results) == 0 {
			return bleErrorMsg{err: ble.ErrDeviceNotFound}
		}

		client.SetMoveCallback(func(moves []string) {
			select {
			case m.bleMoves <- moves:
			default:
				m.logger.Warn("dropping smart cube moves", "moves", moves)
			}
		})

		if err := client.Connect(context.Background(), results[0]); err != nil {
			return bleErrorMsg{err: err}
		}
		return bleConnectedMsg{client: client, name: client.DeviceName()}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		m.logger.Debug("key", "key", key)

		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.client != nil {
				m.client.Disconnect()
			}
			return m, tea.Quit

		case "s":
			m.ctrl.Scramble()

		case "enter":
			facelets, err := m.ctrl.BeginSolve()
			if err != nil {
				return m, nil
			}
			m.logger.Info("solving", "facelets", facelets)
			return m, m.solveCmd(facelets)

		default:
			if name, ok := keyMoves[key]; ok {
				m.ctrl.Press(name)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		now := time.Time(msg)
		dt := m.frame
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now
		m.cube.Step(dt)
		m.drainPhysical()
		return m, m.frameCmd()

	case solveResultMsg:
		m.ctrl.CompleteSolve(msg.solution, msg.err)

	case bleConnectedMsg:
		m.client = msg.client
		m.bleStatus = "Connected: " + msg.name
		if err := m.client.FlashBacklight(); err != nil {
			m.logger.Debug("flash failed", "error", err)
		}

	case bleErrorMsg:
		m.logger.Warn("smart cube unavailable", "error", msg.err)
		m.bleStatus = "Smart cube: " + msg.err.Error()

	case bleMovesMsg:
		m.physical = append(m.physical, msg.moves...)
		m.drainPhysical()
		return m, m.listenForMoves()
	}

	return m, nil
}

// drainPhysical presses the next smart-cube turn once the controls accept it.
// Turns made while a solve is running wait until it finishes.
func (m *playModel) drainPhysical() {
	if len(m.physical) > 0 && m.ctrl.Press(m.physical[0]) {
		m.physical = m.physical[1:]
	}
}
