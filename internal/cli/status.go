package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the database and the active cube",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "nxcube status")
	fmt.Fprintln(out, "=============")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Database: %s\n", w.db.Path())
	if v, err := w.db.CurrentVersion(); err == nil {
		fmt.Fprintf(out, "Schema version: %d\n", v)
	}

	cubes, err := storage.NewCubeRepository(w.db).List()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored cubes: %d\n", len(cubes))

	if !w.state.HasActiveCube() {
		fmt.Fprintln(out, "Active cube: none")
		return nil
	}
	if err := w.openActive(); err != nil {
		fmt.Fprintln(out, "Active cube: none")
		return nil
	}
	rec, err := w.session.Record()
	if err != nil {
		return err
	}
	count, err := storage.NewMoveRepository(w.db).Count(rec.CubeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Active cube: %s (%dx%dx%d, %d moves)\n", rec.CubeID, rec.Dimensions, rec.Dimensions, rec.Dimensions, count)
	return nil
}
