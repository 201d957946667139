// Package config loads tablereg configuration from file, environment
// variables and flags, layered over the built-in registry.
package config

import "github.com/leapstack-labs/tablereg/pkg/registry"

// LayerConfig declares one registry layer. Declaration order in the
// config file is the layer order of the resulting registry.
type LayerConfig struct {
	Name   string   `koanf:"name"`
	Tables []string `koanf:"tables"`
}

// Config holds all CLI configuration options.
type Config struct {
	Registry []LayerConfig `koanf:"registry"`
	Driver   string        `koanf:"driver"`
	Database string        `koanf:"database"`
	Verbose  bool          `koanf:"verbose"`
	Output   string        `koanf:"output"`
}

// BuildRegistry materializes the configured layer mapping. The defaults
// layer always carries the built-in registry, so this is non-empty even
// without a config file.
func (c *Config) BuildRegistry() *registry.Registry {
	if len(c.Registry) == 0 {
		return registry.Builtin()
	}
	layers := make([]registry.Layer, 0, len(c.Registry))
	for _, l := range c.Registry {
		layers = append(layers, registry.Layer{Name: l.Name, Tables: l.Tables})
	}
	return registry.New(layers...)
}
