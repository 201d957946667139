package commands

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/tablereg/pkg/registry"
)

// layerOut is the JSON/YAML shape of one registry layer. A plain map
// would lose layer order, so exports use an ordered list instead.
type layerOut struct {
	Name   string   `json:"name" yaml:"name"`
	Tables []string `json:"tables" yaml:"tables"`
}

// layersOut renders a registry as an ordered list of layers.
func layersOut(reg *registry.Registry) []layerOut {
	out := make([]layerOut, 0, reg.Len())
	for _, name := range reg.Layers() {
		tables, _ := reg.Tables(name)
		out = append(out, layerOut{Name: name, Tables: tables})
	}
	return out
}

// renderRows writes header and rows in the requested output format.
func renderRows(w io.Writer, format string, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case "markdown", "md":
		t.RenderMarkdown()
	default:
		t.SetStyle(table.StyleLight)
		t.Render()
	}
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
