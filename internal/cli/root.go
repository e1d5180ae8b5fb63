// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxNxN cube move engine",
	Long: `nxcube - turn, render and animate NxNxN twisty cubes.

Moves are written as a face letter (F R B L U D) or axis (x y z), an optional
layer count and an optional suffix: ' for a reverse quarter turn, *2 for a
half turn. Cubes created with "nxcube cube new" are stored with their move
lists and can be reopened later.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: ~/.nxcube/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger returns a development logger with --verbose and a no-op one
// otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
