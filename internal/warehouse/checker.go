package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	tableregistry "github.com/leapstack-labs/tablereg/pkg/registry"
)

// Checker reports which registered tables exist in a target database.
type Checker struct {
	db     *sql.DB
	driver Driver
	logger *slog.Logger
}

// Status is the verification result for one registered table.
type Status struct {
	Layer  string `json:"layer"`
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
}

// Open connects to the target database using the named driver.
// The logger may be nil.
func Open(ctx context.Context, driverName, dsn string, logger *slog.Logger) (*Checker, error) {
	d, ok := Get(driverName)
	if !ok {
		return nil, &UnknownDriverError{Driver: driverName, Available: ListDrivers()}
	}

	db, err := sql.Open(d.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{db: db, driver: d, logger: logger}, nil
}

// Close closes the database connection.
func (c *Checker) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// CheckTables probes every (layer, table) pair of the registry, in
// registry order. A table missing from the warehouse is a reported
// status, not an error; only probe failures abort the check.
func (c *Checker) CheckTables(ctx context.Context, reg *tableregistry.Registry) ([]Status, error) {
	pairs := reg.Pairs()
	out := make([]Status, 0, len(pairs))
	for _, p := range pairs {
		exists, err := c.tableExists(ctx, p.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", p.Table, err)
		}
		c.logger.Debug("checked table", "layer", p.Layer, "table", p.Table, "exists", exists)
		out = append(out, Status{Layer: p.Layer, Table: p.Table, Exists: exists})
	}
	return out, nil
}

func (c *Checker) tableExists(ctx context.Context, table string) (bool, error) {
	var name string
	err := c.db.QueryRowContext(ctx, c.driver.ExistsQuery, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
