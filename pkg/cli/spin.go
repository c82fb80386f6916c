package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/getmockd/roulette/pkg/cli/internal/output"
	"github.com/getmockd/roulette/pkg/render"
	"github.com/getmockd/roulette/pkg/roulette"
)

type spinOptions struct {
	count       int
	seed        int64
	format      string
	shapes      []string
	successRate float64
	exoticRate  float64
	query       string
}

func newSpinCmd(global *globalOptions) *cobra.Command {
	opts := &spinOptions{}

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the roulette one or more times",
		Example: `  roulette spin
  roulette spin -n 5 --format json
  roulette spin --seed 42 --shape 'null_*' --success-rate 0
  roulette spin --success-rate 1 --query '$.data.timestamp'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpin(cmd.OutOrStdout(), opts, global.logger)
		},
	}

	defaults := roulette.DefaultConfig()
	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 1, "Number of spins")
	f.Int64Var(&opts.seed, "seed", 0, "Seed the random source (0 = time-based)")
	f.StringVarP(&opts.format, "format", "f", string(render.FormatText), "Output format (text, json, yaml)")
	f.StringSliceVar(&opts.shapes, "shape", nil, "Restrict malformed shapes to names matching these globs")
	f.Float64Var(&opts.successRate, "success-rate", defaults.SuccessRate, "Probability of the success shape (0.0-1.0)")
	f.Float64Var(&opts.exoticRate, "exotic-rate", defaults.ExoticRate, "Probability of a nonstandard status code (0.0-1.0)")
	f.StringVarP(&opts.query, "query", "q", "", "Print only the values a JSONPath selects from each structured body")

	return cmd
}

func runSpin(w io.Writer, opts *spinOptions, logger *slog.Logger) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg := roulette.Config{
		SuccessRate: opts.successRate,
		ExoticRate:  opts.exoticRate,
		Shapes:      opts.shapes,
	}
	g, err := newGenerator(cfg, opts.seed, logger)
	if err != nil {
		return err
	}

	for i := 0; i < opts.count; i++ {
		spin := g.Spin()

		if opts.query != "" {
			if err := writeQuery(w, spin, opts.query, logger); err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			sep := ""
			if format == render.FormatYAML {
				sep = "---"
			}
			if err := writeLine(w, sep); err != nil {
				return err
			}
		}
		if err := render.Render(w, spin, format); err != nil {
			return err
		}
	}
	return nil
}

func writeQuery(w io.Writer, spin roulette.Spin, query string, logger *slog.Logger) error {
	if spin.Kind == roulette.KindRaw {
		logger.Warn("skipping query on raw body", "id", spin.ID, "shape", spin.Shape)
		return nil
	}

	values, err := render.Extract(spin.Response, query)
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := output.JSON(w, v); err != nil {
			return err
		}
	}
	return nil
}
