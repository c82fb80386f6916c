package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/getmockd/roulette/pkg/cli/internal/output"
	"github.com/getmockd/roulette/pkg/roulette"
)

func newShapesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the response shapes the roulette can produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return output.JSON(cmd.OutOrStdout(), roulette.AllShapes())
			}
			return writeShapes(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// writeShapes prints the catalog grouped by kind.
func writeShapes(w io.Writer) error {
	title := cases.Title(language.English)
	tw := output.Table(w)

	for _, kind := range []roulette.Kind{roulette.KindStructured, roulette.KindRaw} {
		fmt.Fprintf(tw, "%s:\n", title.String(string(kind)))
		for _, s := range roulette.AllShapes() {
			if s.Kind != kind {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Name, title.String(strings.ReplaceAll(s.Name, "_", " ")), s.Description)
		}
	}
	return tw.Flush()
}
