package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var renderCmd = &cobra.Command{
	Use:   "render [tokens...]",
	Short: "Print move tokens in canonical notation",
	Long: `Render converts move tokens to canonical text. Tokens that are not moves
are dropped and a missing layer count becomes 1.

Example:
  nxcube render F R2 U3 "x*2"     # F1 R2 U3 x1*2`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), nxcube.Render(args))
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves to a fresh cube and print it",
	Long: `Apply builds a solved cube, applies the moves and prints the result.
An invalid move rejects the whole list.

Example:
  nxcube apply --dim 4 R2 U1\' F1*2`,
	RunE: runApply,
}

var (
	applyDim      int
	applySeed     int64
	applyParallel int
	applyPieces   bool
	applyPlain    bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().IntVarP(&applyDim, "dim", "d", 3, "Cube dimension")
	applyCmd.Flags().Int64Var(&applySeed, "seed", 0, "Seed recorded with the cube")
	applyCmd.Flags().IntVar(&applyParallel, "parallel", 1, "Goroutines per turn step")
	applyCmd.Flags().BoolVar(&applyPieces, "pieces", false, "List every piece instead of the net")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print the net without colour")
}

func runApply(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cube, err := nxcube.New(applyDim,
		nxcube.WithSeed(applySeed),
		nxcube.WithParallelism(applyParallel),
		nxcube.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err := cube.ApplyNotation(strings.Join(args, " ")); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case applyPieces:
		printPieces(out, cube.Pieces())
	case applyPlain:
		fmt.Fprint(out, cube.String())
	default:
		fmt.Fprintln(out, renderNet(cube.Net()))
	}
	return nil
}

// printPieces writes one line per piece: its position, then each label and
// the direction it points.
func printPieces(w io.Writer, pieces []nxcube.PieceState) {
	for _, p := range pieces {
		var b strings.Builder
		b.WriteString(p.Position.String())
		for _, label := range p.Labels() {
			fmt.Fprintf(&b, " %s%s", label, p.Direction[label])
		}
		fmt.Fprintln(w, b.String())
	}
}
