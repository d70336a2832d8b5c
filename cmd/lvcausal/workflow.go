package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
	"github.com/katalvlaran/lvcausal/internal/config"
	"github.com/katalvlaran/lvcausal/refute"
	"github.com/katalvlaran/lvcausal/synth"
)

// report is what estimate and run print.
type report struct {
	Rows       int     `json:"rows"`
	Seed       int64   `json:"seed"`
	Method     string  `json:"method"`
	Treatment  string  `json:"treatment"`
	Outcome    string  `json:"outcome"`
	Instrument string  `json:"instrument"`
	Estimate   float64 `json:"estimate"`

	// Tolerance is set by run only; estimate has nothing to grade.
	Tolerance   *float64        `json:"tolerance,omitempty"`
	Refutations []refutationRow `json:"refutations,omitempty"`
}

type refutationRow struct {
	refute.Refutation
	Passed bool `json:"passed"`
}

// failed lists the strategies that did not pass.
func (r report) failed() []string {
	var out []string
	for _, row := range r.Refutations {
		if !row.Passed {
			out = append(out, row.Strategy.String())
		}
	}
	return out
}

// synthesize builds the configured synthetic dataset.
func synthesize(cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	ds, err := synth.Linear(cfg.Data.Rows, cfg.Data.Seed, cfg.SynthOptions()...)
	if err != nil {
		return nil, fmt.Errorf("synthesizing data: %w", err)
	}
	logger.Info("dataset synthesized",
		"rows", ds.Len(),
		"columns", strings.Join(ds.Names(), ","),
		"beta", cfg.Data.Beta,
		"seed", cfg.Data.Seed)

	return ds, nil
}

// estimate runs the configured estimator on ds.
func estimate(cfg *config.Config, ds *dataset.Dataset, logger *slog.Logger) (*estimator.Estimator, estimator.Estimate, error) {
	opts, err := cfg.EstimatorOptions()
	if err != nil {
		return nil, estimator.Estimate{}, err
	}
	est, err := estimator.New(opts)
	if err != nil {
		return nil, estimator.Estimate{}, err
	}

	e, err := est.Estimate(ds)
	if err != nil {
		return nil, estimator.Estimate{}, fmt.Errorf("estimating effect: %w", err)
	}
	logger.Info("effect estimated", "method", e.Method().String(), "value", e.Value())

	return est, e, nil
}

func newReport(cfg *config.Config, e estimator.Estimate) report {
	return report{
		Rows:       e.Rows(),
		Seed:       cfg.Data.Seed,
		Method:     e.Method().String(),
		Treatment:  e.Treatment(),
		Outcome:    e.Outcome(),
		Instrument: e.Instrument(),
		Estimate:   e.Value(),
	}
}

func parseStrategies(names []string) ([]refute.Strategy, error) {
	out := make([]refute.Strategy, 0, len(names))
	for _, name := range names {
		s, err := refute.ParseStrategy(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeText prints the report as aligned columns.
func writeText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "rows\t%d\n", r.Rows)
	fmt.Fprintf(tw, "seed\t%d\n", r.Seed)
	fmt.Fprintf(tw, "method\t%s\n", r.Method)
	fmt.Fprintf(tw, "roles\t%s -> %s (instrument %s)\n", r.Treatment, r.Outcome, r.Instrument)
	fmt.Fprintf(tw, "estimate\t%.6g\n", r.Estimate)

	if r.Tolerance != nil {
		fmt.Fprintf(tw, "tolerance\t%g\n", *r.Tolerance)
	}

	if len(r.Refutations) > 0 {
		fmt.Fprintf(tw, "\nSTRATEGY\tESTIMATED\tNEW EFFECT\tSTD DEV\tSIMS\tPASSED\n")
		for _, row := range r.Refutations {
			fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.3g\t%d\t%t\n",
				row.Strategy, row.Baseline, row.NewEffect, row.StdDev, row.Simulations, row.Passed)
		}
	}

	return tw.Flush()
}

func writeReport(w io.Writer, asJSON bool, r report) error {
	if asJSON {
		return writeJSON(w, r)
	}
	return writeText(w, r)
}
