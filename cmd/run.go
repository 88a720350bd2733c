package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/drivesim/internal/adapters/eventbus"
	"github.com/ZanzyTHEbar/drivesim/internal/adapters/memworld"
	"github.com/ZanzyTHEbar/drivesim/internal/config"
	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/experiment"
	"github.com/ZanzyTHEbar/drivesim/internal/logging"
	"github.com/ZanzyTHEbar/drivesim/internal/scheduler"
	"github.com/ZanzyTHEbar/drivesim/internal/utils"
)

func runCmd() *cobra.Command {
	var reportFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every invocation of an experiment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, traffic, err := setup(cmd)
			if err != nil {
				return err
			}
			return runExperiment(cmd, cfg, log, traffic, reportFile)
		},
	}
	cmd.Flags().StringVarP(&reportFile, "report", "o", "", "Write run reports as JSON to this file")
	return cmd
}

func planCmd() *cobra.Command {
	var until int
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a single invocation and print every executed instant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, traffic, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("until") {
				cfg.Experiment.EndTime = until
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			sim := memworld.NewSim(traffic, cfg.Experiment.RandomSeed, log)
			s := scheduler.New(sim.Network(),
				scheduler.WithLogger(log),
				scheduler.WithUpdateRate(cfg.Scheduler.FrameworkUpdateRate),
				scheduler.WithTrace(func(p scheduler.TracePoint) {
					fmt.Fprintf(out, "%s\t%d\ttasks=%d\twindow=[%d,%d]\n",
						utils.FormatSimTime(p.Instant), p.Instant, p.Tasks, p.Lower, p.Upper)
				}),
			)
			result := &domain.RunResult{}
			if err := s.Run(ctx, cfg.Experiment.StartTime, cfg.Experiment.EndTime, result, sim.Events); err != nil {
				return err
			}
			st := s.Stats()
			fmt.Fprintf(out, "instants=%d tasks=%d spawned=%d removed=%d end=%d\n",
				st.Instants, st.TasksExecuted, st.AgentsSpawned, st.AgentsRemoved, result.EndTime())
			return nil
		},
	}
	cmd.Flags().IntVar(&until, "until", 0, "Stop at this instant in ms instead of the configured end time")
	return cmd
}

func configCmd() *cobra.Command {
	var writeFile string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or write the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if writeFile != "" {
				return cfg.SaveToFile(writeFile)
			}
			data, err := json.Marshal(cfg, jsontext.WithIndent("  "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&writeFile, "write", "", "Write the configuration to this file instead of printing it")
	return cmd
}

func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, *memworld.Traffic, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log := logging.NewLogger(cfg.System.LogLevel, cfg.System.LogFormat)
	if cfg.Experiment.TrafficFile == "" {
		return nil, log, nil, errors.New("no traffic file given (--traffic or experiment.trafficFile)")
	}
	traffic, err := memworld.LoadTraffic(cfg.Experiment.TrafficFile)
	if err != nil {
		return nil, log, nil, err
	}
	return cfg, log, traffic, nil
}

func runExperiment(cmd *cobra.Command, cfg *config.Config, log zerolog.Logger, traffic *memworld.Traffic, reportFile string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.NewSimpleEventBus(cfg.EventBus.DefaultBufferSize, log)
	sub, err := bus.SubscribeAll(0,
		domain.TopicRunStarted, domain.TopicAgentSpawned, domain.TopicAgentRemoved,
		domain.TopicRunCompleted, domain.TopicRunFailed)
	if err != nil {
		return err
	}
	stats := domain.NewRunStatsCollector(log)
	statsDone := stats.EventHandler(sub)
	if cfg.System.StatsInterval > 0 {
		stopStats := make(chan struct{})
		defer close(stopStats)
		stats.StartStatsMonitor(time.Duration(cfg.System.StatsInterval)*time.Millisecond, stopStats)
	}

	exp := memworld.NewExperiment(traffic, log)
	runner := experiment.NewRunner(experiment.Config{
		StartTime:   cfg.Experiment.StartTime,
		EndTime:     cfg.Experiment.EndTime,
		Invocations: cfg.Experiment.Invocations,
		RandomSeed:  cfg.Experiment.RandomSeed,
		Parallelism: cfg.Experiment.Parallelism,
		UpdateRate:  cfg.Scheduler.FrameworkUpdateRate,
	}, exp.Factory,
		experiment.WithObserver(exp),
		experiment.WithEventPublisher(bus),
		experiment.WithLogger(log),
	)

	began := time.Now()
	summary, runErr := runner.Run(ctx)
	bus.Stop()
	<-statsDone
	stats.PrintStats()

	out := cmd.OutOrStdout()
	for _, rec := range summary.Records {
		status := "ok"
		if rec.Err != nil {
			status = "failed: " + rec.Err.Error()
		}
		fmt.Fprintf(out, "invocation=%d seed=%d end=%s instants=%d tasks=%d %s\n",
			rec.Invocation.Index, rec.Invocation.Seed, utils.FormatSimTime(rec.EndTime),
			rec.Stats.Instants, rec.Stats.TasksExecuted, status)
	}
	fmt.Fprintf(out, "%d/%d invocations succeeded in %s\n",
		summary.Succeeded(), cfg.Experiment.Invocations, utils.FormatDuration(time.Since(began)))

	if reportFile != "" {
		if err := writeReport(reportFile, exp.Reports()); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

func writeReport(path string, reports []memworld.RunReport) error {
	if err := utils.CreateParentDir(path); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	data, err := json.Marshal(reports, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

