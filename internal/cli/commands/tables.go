package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// TablesOptions holds options for the tables command.
type TablesOptions struct {
	Layer string
	Table string
}

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	opts := &TablesOptions{}
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List registered tables, optionally filtered by layer or name",
		Long: `List the registry's tables, restricted by the optional --layer and
--table criteria.

Naming a layer absent from the registry fails and lists the valid
layers. Naming a table that occurs in no selected layer fails as well.`,
		Example: `  # All tables in every layer
  tablereg tables

  # Tables of the kpi layer
  tablereg tables --layer kpi

  # Layers containing markettrade
  tablereg tables --table markettrade

  # Machine-readable output
  tablereg tables --layer kpi --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Layer, "layer", "l", "", "Restrict to one layer")
	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Restrict to one table name")

	return cmd
}

func runTables(cmd *cobra.Command, opts *TablesOptions) error {
	cmdCtx := FromContext(cmd.Context())

	filtered, err := cmdCtx.Registry.Filter(opts.Layer, opts.Table)
	if err != nil {
		return err
	}

	if cmdCtx.Config.Output == "json" {
		return renderJSON(cmd.OutOrStdout(), layersOut(filtered))
	}

	pairs := filtered.Pairs()
	rows := make([]table.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, table.Row{p.Layer, p.Table})
	}
	renderRows(cmd.OutOrStdout(), cmdCtx.Config.Output, table.Row{"layer", "table"}, rows)
	return nil
}
