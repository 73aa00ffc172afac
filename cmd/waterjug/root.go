package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waterjug/internal/config"
	"github.com/katalvlaran/waterjug/internal/logging"
)

// errNoSolution makes the process exit with status 1 after the answer was printed.
var errNoSolution = errors.New("no solution")

// app carries settings resolved in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "waterjug",
		Short:         "Waterjug solves the two-jug measuring puzzle",
		Long:          `Waterjug finds the shortest sequence of fill, empty and transfer actions that measures a target amount with two jugs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
			}
			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			a.log.Debug("configuration loaded", "path", path)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "waterjug.yaml", "Path to the YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(
		newSolveCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoSolution) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
