package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/roulette/pkg/logging"
	"github.com/getmockd/roulette/pkg/roulette"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCmd builds the roulette command tree. Running it without a
// subcommand spins once and prints the result.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logger: logging.Nop()}
	var seed int64

	cmd := &cobra.Command{
		Use:   "roulette",
		Short: "Spin the API response roulette",
		Long: `roulette produces randomly broken API responses: a status code that is
sometimes nonstandard, paired with a body that violates common API
conventions (plain text from a JSON endpoint, XML, nested errors, nulls
where arrays belong, impossible timestamps). Status and body are drawn
independently and are often contradictory.

Run without a subcommand for a single demo spin.`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Run()
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(logging.Config{
				Level:  logging.ParseLevel(opts.logLevel),
				Format: logging.ParseFormat(opts.logFormat),
				Output: cmd.ErrOrStderr(),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				return RunDemo(cmd.OutOrStdout())
			}
			g, err := newGenerator(roulette.DefaultConfig(), seed, opts.logger)
			if err != nil {
				return err
			}
			return writeDemo(cmd.OutOrStdout(), g.Spin())
		},
	}

	defaults := logging.DefaultConfig()
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaults.Level.String(), "Log level (debug, info, warn, error); defaults to $"+logging.EnvLevel)
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(logging.FormatText), "Log format (text, json)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed the random source for a reproducible spin (0 = time-based)")

	cmd.AddCommand(newSpinCmd(opts))
	cmd.AddCommand(newShapesCmd())
	cmd.AddCommand(newStatsCmd(opts))

	return cmd
}

// Run executes the root command with os.Args and returns the process exit code.
func Run() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits the process on failure.
// This is called by main.main().
func Execute() {
	if code := Run(); code != 0 {
		os.Exit(code)
	}
}

// newGenerator builds a generator; seed 0 means time-seeded.
func newGenerator(cfg roulette.Config, seed int64, logger *slog.Logger) (*roulette.Generator, error) {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return roulette.NewGenerator(cfg, rng, roulette.WithLogger(logger))
}

// writeLine writes s and a trailing newline to w.
func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
