package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waterjug/internal/input"
	"github.com/katalvlaran/waterjug/jug"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check X Y Z",
		Short: "Report whether Z is measurable without searching",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := input.Parse(args[0], args[1], args[2])
			if err != nil {
				a.log.Warn("invalid input", "error", err)
				fmt.Fprintln(cmd.OutOrStdout(), "infeasible: invalid input")
				return errNoSolution
			}
			g := jug.GCD(q.X, q.Y)
			if !jug.Feasible(q.X, q.Y, q.Z) {
				fmt.Fprintf(cmd.OutOrStdout(), "infeasible (gcd %d)\n", g)
				return errNoSolution
			}
			fmt.Fprintf(cmd.OutOrStdout(), "feasible (gcd %d)\n", g)
			return nil
		},
	}
}
