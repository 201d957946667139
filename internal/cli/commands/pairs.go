package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewPairsCommand creates the pairs command.
func NewPairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "Enumerate every (layer, table) pair",
		Long: `Enumerate the registry as a flat sequence of (layer, table) pairs:
layers in declaration order, tables in declared order within each layer.
This is the iteration order the enrichment jobs use.`,
		Example: `  # All pairs
  tablereg pairs

  # All pairs as JSON
  tablereg pairs --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := FromContext(cmd.Context())

			pairs := cmdCtx.Registry.Pairs()
			if cmdCtx.Config.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), pairs)
			}

			rows := make([]table.Row, 0, len(pairs))
			for _, p := range pairs {
				rows = append(rows, table.Row{p.Layer, p.Table})
			}
			renderRows(cmd.OutOrStdout(), cmdCtx.Config.Output, table.Row{"layer", "table"}, rows)
			return nil
		},
	}
}
