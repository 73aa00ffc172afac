package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waterjug/internal/input"
	"github.com/katalvlaran/waterjug/internal/render"
	"github.com/katalvlaran/waterjug/jug"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [X Y Z]",
		Short: "Print the shortest action sequence that measures Z",
		Long: `Solve prints the fewest actions that leave exactly Z units in either jug,
starting with both jugs empty. Without arguments the query from the
configuration file is used (2 10 4 by default).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("solve takes 0 or 3 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("max-states") {
				a.cfg.Solver.MaxStates, _ = cmd.Flags().GetInt("max-states")
			}
			format, err := render.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			q := a.cfg.Query
			var qErr error
			if len(args) == 3 {
				q, qErr = input.Parse(args[0], args[1], args[2])
			}

			var sol *jug.Solution
			if qErr == nil {
				sol, qErr = q.Solve(jug.WithContext(cmd.Context()), jug.WithMaxStates(a.cfg.Solver.MaxStates))
			}
			if qErr != nil && !input.IsNoSolution(qErr) {
				return qErr
			}
			if errors.Is(qErr, input.ErrInvalidInput) {
				a.log.Warn("invalid input", "error", qErr)
			}

			r := render.Renderer{Format: format, GlamourStyle: "auto"}
			if err := r.Render(cmd.OutOrStdout(), render.NewResult(q, sol, qErr)); err != nil {
				return err
			}
			if qErr != nil {
				return errNoSolution
			}
			a.log.Debug("solved", "x", q.X, "y", q.Y, "z", q.Z, "moves", sol.Len())
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, markdown, json or yaml")
	cmd.Flags().Int("max-states", 0, "Abort after expanding this many states (0 = no limit)")
	return cmd
}
