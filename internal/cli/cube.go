package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var cubeCmd = &cobra.Command{
	Use:   "cube",
	Short: "Manage stored cubes",
	Long: `Stored cubes keep their move list in the database and are rebuilt by
replaying it. Commands without an ID act on the active cube.`,
}

var cubeNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a solved cube and make it active",
	Args:  cobra.NoArgs,
	RunE:  runCubeNew,
}

var cubeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored cubes",
	Args:  cobra.NoArgs,
	RunE:  runCubeList,
}

var cubeUseCmd = &cobra.Command{
	Use:   "use <cube-id>",
	Short: "Make a stored cube active",
	Args:  cobra.ExactArgs(1),
	RunE:  runCubeUse,
}

var cubeMoveCmd = &cobra.Command{
	Use:   "move <moves...>",
	Short: "Apply moves to the active cube",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCubeMove,
}

var cubeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active cube",
	Args:  cobra.NoArgs,
	RunE:  runCubeShow,
}

var cubeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Solve the active cube and clear its moves",
	Args:  cobra.NoArgs,
	RunE:  runCubeReset,
}

var cubeDeleteCmd = &cobra.Command{
	Use:   "delete [cube-id]",
	Short: "Delete a stored cube (default: the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCubeDelete,
}

var (
	newDim   int
	newSeed  int64
	newNotes string

	showPlain bool
)

func init() {
	rootCmd.AddCommand(cubeCmd)
	cubeCmd.AddCommand(cubeNewCmd, cubeListCmd, cubeUseCmd, cubeMoveCmd, cubeShowCmd, cubeResetCmd, cubeDeleteCmd)

	cubeNewCmd.Flags().IntVarP(&newDim, "dim", "d", 3, "Cube dimension")
	cubeNewCmd.Flags().Int64Var(&newSeed, "seed", 0, "Seed recorded with the cube")
	cubeNewCmd.Flags().StringVarP(&newNotes, "notes", "n", "", "Notes for this cube")

	cubeShowCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the net without colour")
}

func runCubeNew(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	id, err := w.session.Create(newDim, newSeed, newNotes)
	if err != nil {
		return err
	}
	if err := w.state.SetActiveCube(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %dx%dx%d cube %s\n", newDim, newDim, newDim, id)
	return nil
}

func runCubeList(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	cubes, err := storage.NewCubeRepository(w.db).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(cubes) == 0 {
		fmt.Fprintln(out, `No cubes stored. Create one with: nxcube cube new`)
		return nil
	}

	moves := storage.NewMoveRepository(w.db)
	active := w.state.ActiveCubeID()
	for _, c := range cubes {
		marker := " "
		if c.CubeID == active {
			marker = "*"
		}
		count, err := moves.Count(c.CubeID)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s %s  %dx%dx%d  %4d moves  %s", marker, c.CubeID, c.Dimensions, c.Dimensions, c.Dimensions,
			count, c.CreatedAt.Local().Format(time.DateTime))
		if c.Notes != nil {
			line += "  " + *c.Notes
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func runCubeUse(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.session.Open(args[0]); err != nil {
		return err
	}
	if err := w.state.SetActiveCube(w.session.CubeID()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Active cube: %s\n", w.session.CubeID())
	return nil
}

func runCubeMove(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.openActive(); err != nil {
		return err
	}
	moves, err := w.session.Apply(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", nxcube.FormatMoves(moves))
	return nil
}

func runCubeShow(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.openActive(); err != nil {
		return err
	}
	cube, err := w.session.Cube()
	if err != nil {
		return err
	}
	history, err := w.session.History()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d := cube.Dimensions()
	fmt.Fprintf(out, "Cube %s (%dx%dx%d, seed %d)\n\n", w.session.CubeID(), d, d, d, cube.Seed())
	if showPlain {
		fmt.Fprint(out, cube.String())
	} else {
		fmt.Fprintln(out, renderNet(cube.Net()))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves (%d): %s\n", len(history), nxcube.FormatMoves(history))
	fmt.Fprintf(out, "Solved: %v\n", cube.IsSolved())
	return nil
}

func runCubeReset(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.openActive(); err != nil {
		return err
	}
	if err := w.session.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reset cube %s\n", w.session.CubeID())
	return nil
}

func runCubeDelete(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	if len(args) == 1 {
		err = w.session.Open(args[0])
	} else {
		err = w.openActive()
	}
	if err != nil {
		return err
	}

	id := w.session.CubeID()
	if err := w.session.Delete(); err != nil {
		return err
	}
	if id == w.state.ActiveCubeID() {
		if err := w.state.ClearActiveCube(); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted cube %s\n", id)
	return nil
}
