// Package warehouse verifies registered tables against a live database.
// The validation jobs run it as a preflight so they fail fast when a
// registry entry points at a table the warehouse does not have.
package warehouse

import (
	"fmt"
	"sort"
	"sync"

	// Database drivers supported out of the box.
	_ "github.com/jackc/pgx/v5/stdlib" // postgres
	_ "modernc.org/sqlite"             // sqlite (pure Go)
)

// Driver describes how to reach one database flavor: the database/sql
// driver to open and the table-existence probe for it. The probe takes
// a single table-name parameter and returns a row iff the table exists.
type Driver struct {
	DriverName  string
	ExistsQuery string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Driver)
)

func init() {
	Register("sqlite", Driver{
		DriverName:  "sqlite",
		ExistsQuery: `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
	})
	Register("postgres", Driver{
		DriverName:  "pgx",
		ExistsQuery: `SELECT table_name FROM information_schema.tables WHERE table_name = $1`,
	})
}

// Register adds a driver to the registry.
func Register(name string, d Driver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = d
}

// Get retrieves a driver by name.
func Get(name string) (Driver, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// ListDrivers returns all registered driver names (sorted).
func ListDrivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownDriverError is returned when an unknown driver name is requested.
type UnknownDriverError struct {
	Driver    string
	Available []string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown driver %q\nAvailable drivers: %v\nHint: Check your driver setting in tablereg.yaml", e.Driver, e.Available)
}
