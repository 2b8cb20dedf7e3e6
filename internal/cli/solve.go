package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/controller"
)

var solveScramble string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it headlessly",
	Long: `Scramble a cube (25 random moves, or the sequence given with --scramble),
send its facelet string to the solver and apply the returned solution.

Prints the scramble, the scrambled net, the facelet string, the solution and
whether the cube ends up solved.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence (default: 25 random moves)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)

	s, closeSolver := newSolver(cfg, logger)
	defer closeSolver()

	cube := gocube.NewCube(gocube.WithTurnDuration(0))
	ctrl := controller.New(cube, s, controller.WithLogger(logger))

	var scramble []string
	if solveScramble != "" {
		moves, err := parseStrict(solveScramble)
		if err != nil {
			return err
		}
		for _, m := range moves {
			cube.PerformMove(m.Name)
			scramble = append(scramble, m.Name)
		}
	} else {
		scramble = ctrl.Scramble()
	}
	cube.Settle()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n\n", strings.Join(scramble, " "))
	fmt.Fprint(out, cube.String())
	fmt.Fprintf(out, "\nFacelets: %s\n", cube.FaceletString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := ctrl.Solve(ctx); err != nil {
		fmt.Fprintln(out, ctrl.Status())
		return fmt.Errorf("solve failed: %w", err)
	}
	fmt.Fprintln(out, ctrl.Status())

	cube.Settle()
	if cube.IsSolved() {
		fmt.Fprintln(out, "Cube solved.")
		return nil
	}

	fmt.Fprint(out, cube.String())
	return fmt.Errorf("solution did not solve the cube")
}
