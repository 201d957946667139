package registry

import "fmt"

// UnknownLayerError is returned when a filter names a layer absent from
// the registry.
type UnknownLayerError struct {
	Layer     string
	Available []string
}

func (e *UnknownLayerError) Error() string {
	return fmt.Sprintf("unknown layer %q\nAvailable layers: %v", e.Layer, e.Available)
}

// TableNotFoundError is returned when a filter names a table that occurs
// in none of the selected layers.
type TableNotFoundError struct {
	Table string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %q not found in any layer", e.Table)
}
