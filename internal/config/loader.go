package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/tablereg/pkg/registry"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "tablereg.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "tablereg.yml"

// Default configuration values.
const (
	DefaultDriver = "sqlite"
	DefaultOutput = "table"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. TABLEREG_DRIVER=postgres.
const envPrefix = "TABLEREG_"

// findConfigFile finds the config file to use.
// Priority: explicit path > tablereg.yaml > tablereg.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}

// defaultRegistryConf renders the built-in registry in the shape the
// registry config section uses, so it can seed the defaults layer.
func defaultRegistryConf() []map[string]interface{} {
	b := registry.Builtin()
	out := make([]map[string]interface{}, 0, b.Len())
	for _, name := range b.Layers() {
		tables, _ := b.Tables(name)
		out = append(out, map[string]interface{}{
			"name":   name,
			"tables": tables,
		})
	}
	return out
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// It returns the config and the path of the config file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Load defaults, including the built-in registry
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"registry": defaultRegistryConf(),
		"driver":   DefaultDriver,
		"database": "",
		"verbose":  false,
		"output":   DefaultOutput,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file, if present
	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (TABLEREG_ prefix)
	// Transform: TABLEREG_DRIVER -> driver
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, configFileUsed, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, l := range c.Registry {
		if l.Name == "" {
			return fmt.Errorf("registry layer without a name")
		}
	}
	return nil
}
