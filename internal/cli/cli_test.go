package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tablereg/internal/config"
	"github.com/leapstack-labs/tablereg/pkg/registry"
)

// runCommand executes the root command with the given args, capturing
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestLayersCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "layers")
	require.NoError(t, err)
	assert.Contains(t, out, "kpi")
	assert.Contains(t, out, "data")
}

func TestTablesCommand_Layer(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "tables", "--layer", "kpi")
	require.NoError(t, err)

	for _, table := range []string{"markettrade", "quotertrade", "brokertrade", "clicktrade", "otoswing"} {
		assert.Contains(t, out, table)
	}
	assert.NotContains(t, out, "instrument", "data-only tables must not appear")
}

func TestTablesCommand_TableAcrossLayers(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "tables", "--table", "markettrade", "--output", "json")
	require.NoError(t, err)

	var got []struct {
		Name   string   `json:"name"`
		Tables []string `json:"tables"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got, 2)
	assert.Equal(t, "kpi", got[0].Name)
	assert.Equal(t, []string{"markettrade"}, got[0].Tables)
	assert.Equal(t, "data", got[1].Name)
	assert.Equal(t, []string{"markettrade"}, got[1].Tables)
}

func TestTablesCommand_UnknownLayer(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "tables", "--layer", "nope")
	require.Error(t, err)

	var unknownErr *registry.UnknownLayerError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"kpi", "data"}, unknownErr.Available)
}

func TestTablesCommand_TableNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "tables", "--table", "nonexistent")
	require.Error(t, err)

	var notFoundErr *registry.TableNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "nonexistent", notFoundErr.Table)
}

func TestPairsCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "pairs", "--output", "json")
	require.NoError(t, err)

	var pairs []registry.Pair
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))

	require.Len(t, pairs, 9)
	assert.Equal(t, registry.Pair{Layer: "kpi", Table: "markettrade"}, pairs[0])
	assert.Equal(t, registry.Pair{Layer: "data", Table: "markettrade"}, pairs[5])
}

func TestExportCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := runCommand(t, "export")
	require.NoError(t, err)

	var decoded struct {
		Registry []struct {
			Name   string   `yaml:"name"`
			Tables []string `yaml:"tables"`
		} `yaml:"registry"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Registry, 2)
	assert.Equal(t, "kpi", decoded.Registry[0].Name)

	// The export is itself a loadable config file
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(out), 0644))

	cfg, used, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.ConfigFileName, used)
	assert.Equal(t, registry.Builtin().All(), cfg.BuildRegistry().All())
}

func TestConfigFileOverridesRegistry(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfgYAML := `
registry:
  - name: staging
    tables:
      - stg_trades
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfgYAML), 0644))

	out, err := runCommand(t, "layers")
	require.NoError(t, err)
	assert.Contains(t, out, "staging")
	assert.NotContains(t, out, "kpi", "config file replaces the built-in registry")
}

func TestVerifyCommand_NoDatabase(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "verify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database configured")
}

func TestVerifyCommand_MissingTables(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "verify", "--driver", "sqlite", "--database", ":memory:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing from the warehouse")
	assert.Contains(t, out, "markettrade")
	assert.Contains(t, out, "missing")
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tablereg v"+Version)
}
