// drivesim runs time-stepped driving simulation experiments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ZanzyTHEbar/drivesim/internal/config"
)

const version = "0.3.0"

var (
	configFile  string
	logLevel    string
	logFormat   string
	trafficFile string
	startTime   int
	endTime     int
	invocations int
	randomSeed  int64
	parallelism int
	updateRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "drivesim",
		Short:   "Time-stepped driving simulation",
		Version: version,
		Long: `drivesim executes simulation experiments described by a traffic file.

Examples:
  # Run ten invocations with consecutive seeds
  drivesim run --traffic traffic.yaml --end 60000 --invocations 10 --seed 42

  # Show every executed instant of one run
  drivesim plan --traffic traffic.yaml --until 2000

  # Write the effective configuration
  drivesim config --write drivesim.json
`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "drivesim.json", "Path to configuration file")
	flags.StringVar(&logLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")
	flags.StringVar(&logFormat, "log-format", "", "Log format (console|json)")
	flags.StringVarP(&trafficFile, "traffic", "t", "", "Traffic file (YAML)")
	flags.IntVar(&startTime, "start", 0, "Start time in ms")
	flags.IntVar(&endTime, "end", 0, "End time in ms")
	flags.IntVarP(&invocations, "invocations", "n", 0, "Number of invocations")
	flags.Int64Var(&randomSeed, "seed", 0, "Random seed of the first invocation")
	flags.IntVarP(&parallelism, "parallel", "j", 0, "Invocations run at once")
	flags.IntVar(&updateRate, "update-rate", 0, "Framework update rate in ms")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, DRIVESIM_* variables and flags.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if flags.Changed("log-level") {
		cfg.System.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.System.LogFormat = logFormat
	}
	if flags.Changed("traffic") {
		cfg.Experiment.TrafficFile = trafficFile
	}
	if flags.Changed("start") {
		cfg.Experiment.StartTime = startTime
	}
	if flags.Changed("end") {
		cfg.Experiment.EndTime = endTime
	}
	if flags.Changed("invocations") {
		cfg.Experiment.Invocations = invocations
	}
	if flags.Changed("seed") {
		cfg.Experiment.RandomSeed = randomSeed
	}
	if flags.Changed("parallel") {
		cfg.Experiment.Parallelism = parallelism
	}
	if flags.Changed("update-rate") {
		cfg.Scheduler.FrameworkUpdateRate = updateRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
