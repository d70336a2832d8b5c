package main

import (
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Synthesize a dataset and estimate the treatment effect",
		Args:  cobra.NoArgs,
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
			_, e, err := estimate(cfg, ds, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return writeReport(cmd.OutOrStdout(), jsonOut, newReport(cfg, e))
		},
	}

	addDataFlags(cmd)

	return cmd
}
