package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Layer string
	Table string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the effective registry as YAML",
		Long: `Write the effective registry (built-in or from tablereg.yaml, after any
--layer/--table filtering) as a YAML registry section. The output is
itself a valid tablereg.yaml, so the enrichment and validation scripts
can consume a pinned copy of the mapping.`,
		Example: `  # Export the full registry
  tablereg export

  # Export only the kpi layer
  tablereg export --layer kpi > kpi.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Layer, "layer", "l", "", "Restrict to one layer")
	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Restrict to one table name")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := FromContext(cmd.Context())

	filtered, err := cmdCtx.Registry.Filter(opts.Layer, opts.Table)
	if err != nil {
		return err
	}

	out := struct {
		Registry []layerOut `yaml:"registry"`
	}{Registry: layersOut(filtered)}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	return enc.Close()
}
