package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcausal/internal/config"
	"github.com/katalvlaran/lvcausal/refute"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Synthesize, estimate and refute",
		Long: `Run the whole workflow: synthesize a dataset with a known effect,
estimate it and run the selected refutations (all by default).

Strategies: random-common-cause, placebo-permute, placebo-noise, subset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Logging.SlogLevel())

			ds, err := synthesize(cfg, logger)
			if err != nil {
				return err
			}
			est, baseline, err := estimate(cfg, ds, logger)
			if err != nil {
				return err
			}

			opts := append(cfg.RefuteOptions(), refute.WithLogger(logger))
			ref, err := refute.New(est, opts...)
			if err != nil {
				return err
			}
			results, err := ref.RefuteAll(ds, baseline, cfg.Refute.Strategies...)
			if err != nil {
				return fmt.Errorf("refuting estimate: %w", err)
			}

			rep := newReport(cfg, baseline)
			tolerance := cfg.Refute.Tolerance
			rep.Tolerance = &tolerance
			for _, res := range results {
				passed := res.Passed(cfg.Refute.Tolerance)
				rep.Refutations = append(rep.Refutations, refutationRow{Refutation: res, Passed: passed})
				logger.Info("refutation", "strategy", res.Strategy.String(), "new_effect", res.NewEffect, "passed", passed)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if err := writeReport(cmd.OutOrStdout(), jsonOut, rep); err != nil {
				return err
			}

			strict, _ := cmd.Flags().GetBool("strict")
			if failed := rep.failed(); strict && len(failed) > 0 {
				return fmt.Errorf("refutations failed: %s", strings.Join(failed, ", "))
			}

			return nil
		},
	}

	addDataFlags(cmd)
	cmd.Flags().Int("simulations", refute.DefaultSimulations, "Simulations per refutation")
	cmd.Flags().Float64("fraction", refute.DefaultSubsetFraction, "Row fraction kept by the subset refutation, in (0,1]")
	cmd.Flags().Float64("tolerance", config.DefaultTolerance, "Relative tolerance used to grade refutations")
	cmd.Flags().StringSlice("strategy", nil, "Refutation to run (repeatable); default all")
	cmd.Flags().Bool("strict", false, "Exit non-zero when a refutation does not pass")

	return cmd
}
