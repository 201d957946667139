// Package registry provides the static table registry shared by the
// enrichment and validation tooling. It maps named layers to ordered
// lists of table names and exposes pure query helpers over the mapping.
package registry

// Layer declares one named, ordered group of tables.
type Layer struct {
	Name   string
	Tables []string
}

// Pair identifies a single table within a layer.
type Pair struct {
	Layer string `json:"layer"`
	Table string `json:"table"`
}

// Registry is an immutable mapping from layer name to its ordered table
// list. Layer declaration order is significant and preserved by every
// query. Nothing mutates a Registry after construction and every
// accessor returns an independently owned copy, so concurrent readers
// need no locking.
type Registry struct {
	order  []string
	tables map[string][]string
}

// New builds a Registry from the given layers, copying every table list.
// Layer order follows argument order. A repeated layer name replaces the
// earlier entry's tables but keeps its original position.
func New(layers ...Layer) *Registry {
	r := &Registry{
		tables: make(map[string][]string, len(layers)),
	}
	for _, l := range layers {
		if _, ok := r.tables[l.Name]; !ok {
			r.order = append(r.order, l.Name)
		}
		r.tables[l.Name] = append([]string(nil), l.Tables...)
	}
	return r
}

// Len returns the number of layers.
func (r *Registry) Len() int {
	return len(r.order)
}

// Layers returns the layer names in declaration order.
func (r *Registry) Layers() []string {
	return append([]string(nil), r.order...)
}

// Tables returns a copy of the table list for a layer and whether the
// layer exists.
func (r *Registry) Tables(layer string) ([]string, bool) {
	tables, ok := r.tables[layer]
	if !ok {
		return nil, false
	}
	return append([]string(nil), tables...), true
}

// All returns the full mapping as a fresh map of fresh slices. Use
// Layers to iterate it deterministically.
func (r *Registry) All() map[string][]string {
	out := make(map[string][]string, len(r.tables))
	for name, tables := range r.tables {
		out[name] = append([]string(nil), tables...)
	}
	return out
}

// Pairs returns the flattened (layer, table) sequence: layers in
// declaration order, tables in declared order within each layer.
func (r *Registry) Pairs() []Pair {
	var out []Pair
	for _, name := range r.order {
		for _, table := range r.tables[name] {
			out = append(out, Pair{Layer: name, Table: table})
		}
	}
	return out
}

// Filter returns a new registry restricted by the optional layer and
// table criteria; an empty string means no restriction on that axis.
//
// The layer criterion is validated first and independently: naming a
// layer absent from the registry fails with UnknownLayerError even when
// no table criterion is given. The table criterion keeps, per selected
// layer, the order-preserving subsequence of entries equal to the name;
// a layer contributes to the result only if that subsequence is
// non-empty. A table criterion that matches in none of the selected
// layers fails with TableNotFoundError.
//
// The result never aliases the receiver's state.
func (r *Registry) Filter(layer, table string) (*Registry, error) {
	selected := r.order
	if layer != "" {
		if _, ok := r.tables[layer]; !ok {
			return nil, &UnknownLayerError{Layer: layer, Available: r.Layers()}
		}
		selected = []string{layer}
	}

	out := &Registry{
		tables: make(map[string][]string, len(selected)),
	}
	for _, name := range selected {
		tables := r.tables[name]
		if table != "" {
			var kept []string
			for _, t := range tables {
				if t == table {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				continue
			}
			tables = kept
		} else {
			tables = append([]string(nil), tables...)
		}
		out.order = append(out.order, name)
		out.tables[name] = tables
	}

	if table != "" && len(out.order) == 0 {
		return nil, &TableNotFoundError{Table: table}
	}
	return out, nil
}
