package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/getmockd/roulette/pkg/cli/internal/output"
	"github.com/getmockd/roulette/pkg/roulette"
)

type statsOptions struct {
	count      int
	seed       int64
	shapes     []string
	jsonOutput bool
}

func newStatsCmd(global *globalOptions) *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Spin many times and report the observed distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), opts, global.logger)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 10000, "Number of spins")
	f.Int64Var(&opts.seed, "seed", 0, "Seed the random source (0 = time-based)")
	f.StringSliceVar(&opts.shapes, "shape", nil, "Restrict malformed shapes to names matching these globs")
	f.BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runStats(w io.Writer, opts *statsOptions, logger *slog.Logger) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}

	cfg := roulette.DefaultConfig()
	cfg.Shapes = opts.shapes
	g, err := newGenerator(cfg, opts.seed, logger)
	if err != nil {
		return err
	}

	for i := 0; i < opts.count; i++ {
		g.Spin()
	}
	stats := g.Stats()

	if opts.jsonOutput {
		return output.JSON(w, stats)
	}

	fmt.Fprintf(w, "Spins: %d\n", stats.Spins)
	fmt.Fprintf(w, "Exotic status rate: %.4f (configured %.2f)\n", stats.ExoticRate(), cfg.ExoticRate)
	fmt.Fprintf(w, "Success shape rate: %.4f (configured %.2f)\n\n", stats.SuccessRate(), cfg.SuccessRate)

	tw := output.Table(w)
	fmt.Fprintln(tw, "SHAPE\tCOUNT")
	for _, s := range roulette.AllShapes() {
		if n, ok := stats.ByShape[s.Name]; ok {
			fmt.Fprintf(tw, "%s\t%d\n", s.Name, n)
		}
	}
	fmt.Fprintln(tw, "\t")

	codes := make([]int, 0, len(stats.ByStatus))
	for code := range stats.ByStatus {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	fmt.Fprintln(tw, "STATUS\tCOUNT")
	for _, code := range codes {
		marker := ""
		if roulette.IsExoticStatus(code) {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d%s\t%d\n", code, marker, stats.ByStatus[code])
	}
	return tw.Flush()
}
