package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
)

var faceletsCmd = &cobra.Command{
	Use:   "facelets [moves...]",
	Short: "Print the facelet string after a move sequence",
	Long: `Apply a move sequence to a solved cube and print the unfolded net and the
54-character facelet string in U R F D L B order.

Half turns such as R2 are accepted.

Example:
  cubesolver facelets R U R' U'`,
	RunE: runFacelets,
}

func init() {
	rootCmd.AddCommand(faceletsCmd)
}

func runFacelets(cmd *cobra.Command, args []string) error {
	moves, err := parseStrict(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := gocube.NewCube()
	cube.ApplyInstant(moves...)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, cube.String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, cube.FaceletString())
	return nil
}

// parseStrict expands half turns and rejects unknown moves.
func parseStrict(seq string) ([]gocube.Move, error) {
	var moves []gocube.Move
	for _, name := range gocube.ExpandSequence(seq) {
		m, err := gocube.LookupMove(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
