package registry

// Built-in registry shipped with the tool. The kpi layer holds derived
// trade tables produced by the enrichment jobs; the data layer holds the
// raw source tables they read from. The same table name may appear in
// more than one layer (markettrade exists as both a raw feed and a KPI
// target).
var builtin = New(
	Layer{Name: "kpi", Tables: []string{
		"markettrade",
		"quotertrade",
		"brokertrade",
		"clicktrade",
		"otoswing",
	}},
	Layer{Name: "data", Tables: []string{
		"markettrade",
		"marketdepth",
		"quoterdepth",
		"instrument",
	}},
)

// kpiTables is captured once from the built-in registry at load time.
// It is a snapshot, not a live view.
var kpiTables, _ = builtin.Tables("kpi")

// Builtin returns the built-in registry.
func Builtin() *Registry {
	return builtin
}

// KPITables returns a copy of the built-in kpi layer's table list, as
// captured at load time.
func KPITables() []string {
	return append([]string(nil), kpiTables...)
}
