package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/config"
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/rpgo/career-simulator/internal/logging"
	"github.com/rpgo/career-simulator/internal/output"
	"github.com/rpgo/career-simulator/internal/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <profile.yaml>",
		Short: "Simulate a profile year by year until retirement",
		Long: `Simulate a profile until its retirement age, or for --years years.

With --tick-interval 0 (the default) years are computed back to back; a positive
interval runs the engine on its timer. Either way --years pauses the run once that
many years are simulated, and Ctrl-C pauses it and prints what was simulated so far.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			profile, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			seed := a.settings.Seed
			if seed == 0 {
				seed = profile.Simulation.Seed
			}
			years := a.settings.Years
			if years == 0 {
				years = profile.Simulation.MaxYears
			}

			log := a.logger.With(zap.String("op", "run"), zap.String("profile", profile.Profile.Name))
			host := simulation.NewMemoryHost(profile.Profile)
			engine := simulation.NewEngine(host, simulation.Config{
				Interval: a.settings.TickInterval,
				Rand:     calculation.NewRandomSource(seed),
				OnSummary: func(s domain.YearlySummary) {
					log.Debug("year completed",
						zap.Int("year", s.Year),
						zap.Int("age", s.Age),
						zap.String("net_worth", s.NetWorth.StringFixed(2)),
						zap.Int("achievements", len(s.Achievements)))
				},
			})
			engine.SetLogger(logging.Sugar(log))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			state, runErr := simulation.Run(ctx, engine, years)
			log.Info("simulation finished", zap.String("state", string(state)), zap.Int("years", len(engine.Summaries())))

			report := simulation.Report(engine, host)
			if err := writeReport(cmd, report, a.settings.OutputFormat); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().Int("years", 0, "Stop after this many years, timed or not (0: until retirement)")
	cmd.Flags().Int64("seed", 0, "Seed for the economic random walk (0: profile seed, else random)")
	cmd.Flags().Duration("tick-interval", 0, "Wall-clock time between simulated years")
	cmd.Flags().String("format", "console", fmt.Sprintf("Output format(s), comma separated: %s", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().String("output-dir", "", "Write one report file per format into this directory instead of stdout")
	return cmd
}

func writeReport(cmd *cobra.Command, report *domain.SimulationReport, format string) error {
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		return output.GenerateReport(cmd.OutOrStdout(), report, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	files, err := output.GenerateFiles(report, strings.Split(format, ","), dir)
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
	}
	return err
}
