package main

import (
	"fmt"
	"os"

	"github.com/rpgo/career-simulator/internal/config"
	"github.com/rpgo/career-simulator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0-dev"

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	settings config.Settings
	logger   *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.DefaultSettings(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "finsim",
		Short: "Yearly personal finance simulator",
		Long: `finsim advances a personal financial profile one simulated year at a time,
recomputing taxes, investment growth and net worth until retirement.

Runtime settings come from --settings, FINSIM_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("settings")
			settings, err := config.LoadSettings(path, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(settings.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.settings = settings
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().String("settings", "", "Runtime settings file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console or json")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitConfigCmd(),
		newRunCmd(a),
		newTaxCmd(),
	)
	return rootCmd
}
