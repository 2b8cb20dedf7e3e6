package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/controller"
)

func TestFaceletsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"facelets", "R"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"
	if !strings.Contains(out.String(), want) {
		t.Errorf("output should contain %s, got:\n%s", want, out.String())
	}
}

func TestParseStrictRejectsUnknownMoves(t *testing.T) {
	if _, err := parseStrict("R Q"); err == nil {
		t.Error("expected error for unknown move")
	}
	moves, err := parseStrict("R2 U'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gocube.FormatMoves(moves); got != "R R U'" {
		t.Errorf("unexpected moves %q", got)
	}
}

type echoSolver struct{ solution string }

func (s echoSolver) GetSolution(context.Context, string) (string, error) {
	return s.solution, nil
}

func newTestModel() *playModel {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cube := gocube.NewCube(gocube.WithTurnDuration(100 * time.Millisecond))
	s := echoSolver{solution: "R'"}
	ctrl := controller.New(cube, s, controller.WithLogger(logger))
	return newPlayModel(cube, ctrl, s, 10*time.Millisecond, logger)
}

func TestPlayModelKeysAndFrames(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !m.cube.IsAnimating() {
		t.Fatal("r should start an R turn")
	}

	start := time.Now()
	m.Update(frameMsg(start))
	m.Update(frameMsg(start.Add(200 * time.Millisecond)))
	if m.cube.IsAnimating() {
		t.Error("frames should finish the turn")
	}
	if got := m.ctrl.HistoryText(); got != "R" {
		t.Errorf("unexpected history %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start a solve")
	}
	if m.ctrl.Status() != controller.StatusConnecting {
		t.Errorf("unexpected status %q", m.ctrl.Status())
	}

	m.Update(cmd())
	m.Update(frameMsg(start.Add(400 * time.Millisecond)))
	if !m.cube.IsSolved() {
		t.Error("solution should have been played")
	}
	if !m.ctrl.Enabled() {
		t.Error("controls should be enabled after playback")
	}

	if view := m.View(); !strings.Contains(view, "Solution found! Executing: R'") {
		t.Errorf("view should show the solution status:\n%s", view)
	}
}

func TestPlayModelSmartCubeMoves(t *testing.T) {
	m := newTestModel()

	m.Update(bleMovesMsg{moves: []string{"F", "F'"}})
	if len(m.physical) != 1 {
		t.Fatalf("second turn should wait for the first, pending %v", m.physical)
	}

	start := time.Now()
	m.Update(frameMsg(start))
	m.Update(frameMsg(start.Add(150 * time.Millisecond)))
	m.Update(frameMsg(start.Add(300 * time.Millisecond)))

	if len(m.physical) != 0 || m.cube.IsAnimating() || !m.cube.IsSolved() {
		t.Errorf("F F' should have been mirrored, pending %v", m.physical)
	}
}
