package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corrinfell/gridwalk/internal/gridworld"
)

var buildDescribe bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Construct the canonical demo map and print its layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := gridworld.NewCanonicalDemoMap()
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}

		if buildDescribe {
			fmt.Print(m.Describe())
			return nil
		}

		fmt.Printf("map %q (%s): %dx%d obstacles=%d\n", m.Name, m.ID, m.Rows(), m.Cols(), len(m.Obstacles()))
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildDescribe, "describe", true, "print the full human-readable map description")
}
