package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drip/internal/shared/compression/hpack"
)

// fileConfig is the on-disk shape hpackdump's --config flag accepts,
// mirroring hpack.Config's two knobs under snake_case keys.
type fileConfig struct {
	InitialMaxDynamicTableSize int `yaml:"initial_max_dynamic_table_size"`
	MaxStringLength            int `yaml:"max_string_length"`
}

// LoadConfig reads a YAML config file and overlays it on hpack.DefaultConfig:
// a field left at zero in the file keeps the default instead of forcing a
// zero-sized table or string cap on the caller.
func LoadConfig(path string) (hpack.Config, error) {
	cfg := hpack.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return hpack.Config{}, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return hpack.Config{}, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	if fc.InitialMaxDynamicTableSize != 0 {
		cfg.InitialMaxDynamicTableSize = fc.InitialMaxDynamicTableSize
	}
	if fc.MaxStringLength != 0 {
		cfg.MaxStringLength = fc.MaxStringLength
	}

	if err := cfg.Validate(); err != nil {
		return hpack.Config{}, fmt.Errorf("cli: invalid config %s: %w", path, err)
	}
	return cfg, nil
}
