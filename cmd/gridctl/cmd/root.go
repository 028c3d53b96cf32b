// Package cmd implements the gridctl command tree: build, eval, and run
// subcommands over the gridwalk grid-world environment.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "Build, evaluate, and run episodes over a gridwalk map",
	Long: `gridctl is a demonstrator CLI for the gridwalk grid-world environment.

It provides commands for:
  - Describing the canonical demo map
  - Evaluating a single point's reward
  - Running a scripted episode and reporting the trajectory`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main, once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted by every subcommand; no subcommand reads it, so it has no effect on output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
}
