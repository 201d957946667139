package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Layout(t *testing.T) {
	r := Builtin()

	assert.Equal(t, []string{"kpi", "data"}, r.Layers())

	kpi, ok := r.Tables("kpi")
	require.True(t, ok)
	assert.Equal(t, []string{"markettrade", "quotertrade", "brokertrade", "clicktrade", "otoswing"}, kpi)

	data, ok := r.Tables("data")
	require.True(t, ok)
	assert.Contains(t, data, "markettrade", "markettrade appears in both layers")
}

func TestBuiltin_FilterScenarios(t *testing.T) {
	r := Builtin()

	got, err := r.Filter("", "markettrade")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"kpi":  {"markettrade"},
		"data": {"markettrade"},
	}, got.All())

	got, err = r.Filter("kpi", "")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"kpi": {"markettrade", "quotertrade", "brokertrade", "clicktrade", "otoswing"},
	}, got.All())

	_, err = r.Filter("nope", "")
	var unknownErr *UnknownLayerError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"kpi", "data"}, unknownErr.Available)

	_, err = r.Filter("", "nonexistent")
	var notFoundErr *TableNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestKPITables_Snapshot(t *testing.T) {
	first := KPITables()
	require.NotEmpty(t, first)

	// Callers get copies; mutating one must not leak into the next
	first[0] = "mutated"

	second := KPITables()
	assert.Equal(t, "markettrade", second[0])

	base, _ := Builtin().Tables("kpi")
	assert.Equal(t, base, second)
}
