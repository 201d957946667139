package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewLayersCommand creates the layers command.
func NewLayersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List registry layers",
		Long:  `List the declared layers and their table counts, in declaration order.`,
		Example: `  # List layers
  tablereg layers

  # List layers with their full table lists as JSON
  tablereg layers --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := FromContext(cmd.Context())
			reg := cmdCtx.Registry

			if cmdCtx.Config.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), layersOut(reg))
			}

			rows := make([]table.Row, 0, reg.Len())
			for _, name := range reg.Layers() {
				tables, _ := reg.Tables(name)
				rows = append(rows, table.Row{name, len(tables)})
			}
			renderRows(cmd.OutOrStdout(), cmdCtx.Config.Output, table.Row{"layer", "tables"}, rows)
			return nil
		},
	}
}
