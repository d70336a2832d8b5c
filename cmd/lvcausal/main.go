package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcausal/estimator"
	"github.com/katalvlaran/lvcausal/internal/config"
	"github.com/katalvlaran/lvcausal/refute"
	"github.com/katalvlaran/lvcausal/synth"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvcausal",
		Short: "Instrumental-variable effect estimation with refutation checks",
		Long: `lvcausal simulates a confounded linear dataset with a known effect,
estimates the effect with an instrumental-variable estimator (Wald or
Pearl ratio) and sanity-checks the estimate with refutations:
random common cause, placebo treatment and data subsets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEstimateCmd(),
		newRunCmd(),
	)

	return rootCmd
}

// loadConfig resolves defaults → --config file → environment → flags and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyFlagOverrides copies every explicitly set flag into cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("rows") {
		cfg.Data.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("beta") {
		cfg.Data.Beta, _ = flags.GetFloat64("beta")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		cfg.Data.Seed = seed
		cfg.Refute.Seed = seed
	}
	if flags.Changed("treatment") {
		cfg.Estimate.Treatment, _ = flags.GetString("treatment")
	}
	if flags.Changed("method") {
		cfg.Estimate.Method, _ = flags.GetString("method")
	}
	if flags.Changed("simulations") {
		cfg.Refute.Simulations, _ = flags.GetInt("simulations")
	}
	if flags.Changed("fraction") {
		cfg.Refute.SubsetFraction, _ = flags.GetFloat64("fraction")
	}
	if flags.Changed("tolerance") {
		cfg.Refute.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("strategy") {
		names, _ := flags.GetStringSlice("strategy")
		strategies, err := parseStrategies(names)
		if err != nil {
			return err
		}
		cfg.Refute.Strategies = strategies
	}

	return nil
}

// addDataFlags registers the flags shared by estimate and run.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rows", config.DefaultRows, "Number of synthetic rows")
	cmd.Flags().Float64("beta", synth.DefaultBeta, "True treatment effect of the synthetic data")
	cmd.Flags().Int64("seed", refute.DefaultSeed, "Seed for data generation and refutations")
	cmd.Flags().String("treatment", estimator.DefaultTreatment, "Treatment column name")
	cmd.Flags().String("method", estimator.MethodAuto.String(), "Estimator: auto, wald, pearl-ratio")
}

// newLogger builds the CLI logger on w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
