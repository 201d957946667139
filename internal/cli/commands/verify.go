package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tablereg/internal/warehouse"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every registered table exists in the warehouse",
		Long: `Connect to the configured warehouse and probe every (layer, table) pair
of the registry. The command fails when any registered table is missing,
so validation jobs can run it as a preflight.`,
		Example: `  # Verify against a local sqlite warehouse
  tablereg verify --driver sqlite --database market.db

  # Verify against postgres
  tablereg verify --driver postgres --database "host=localhost dbname=market"`,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cmdCtx := FromContext(cmd.Context())
	cfg := cmdCtx.Config

	if cfg.Database == "" {
		return fmt.Errorf("no database configured\nHint: set database in tablereg.yaml or pass --database")
	}

	checker, err := warehouse.Open(cmd.Context(), cfg.Driver, cfg.Database, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = checker.Close() }()

	statuses, err := checker.CheckTables(cmd.Context(), cmdCtx.Registry)
	if err != nil {
		return err
	}

	if cfg.Output == "json" {
		if err := renderJSON(cmd.OutOrStdout(), statuses); err != nil {
			return err
		}
	} else {
		rows := make([]table.Row, 0, len(statuses))
		for _, s := range statuses {
			state := "ok"
			if !s.Exists {
				state = "missing"
			}
			rows = append(rows, table.Row{s.Layer, s.Table, state})
		}
		renderRows(cmd.OutOrStdout(), cfg.Output, table.Row{"layer", "table", "status"}, rows)
	}

	missing := 0
	for _, s := range statuses {
		if !s.Exists {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d registered tables missing from the warehouse", missing, len(statuses))
	}
	return nil
}
