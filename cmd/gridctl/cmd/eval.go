package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corrinfell/gridwalk/internal/gridworld"
)

var evalX, evalY float64

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the reward at a single point on the demo map",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := gridworld.NewCanonicalDemoMap()
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}

		p := gridworld.Point{X: evalX, Y: evalY}
		value, err := m.Evaluate(p)
		if err != nil {
			return fmt.Errorf("eval %s: %w", p, err)
		}

		fmt.Printf("evaluate(%s) = %g\n", p, value)
		return nil
	},
}

func init() {
	evalCmd.Flags().Float64Var(&evalX, "x", 0, "x coordinate")
	evalCmd.Flags().Float64Var(&evalY, "y", 0, "y coordinate")
}
