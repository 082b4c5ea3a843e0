package f2

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config is the file form of engine configuration.
//
//	cache_size: 255
//	builtins: true
//	types:
//	  q: j
type Config struct {
	// CacheSize is the template cache capacity. Zero selects the default.
	CacheSize int `yaml:"cache_size"`

	// Builtins registers s, d and j. Defaults to true when omitted.
	Builtins *bool `yaml:"builtins,omitempty"`

	// Types maps extra type codes to the built-in whose formatter they reuse.
	Types map[string]string `yaml:"types,omitempty"`
}

// LoadConfig parses YAML (or JSON) configuration.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, err)
	}
	if cfg.CacheSize < 0 {
		return nil, NewConfigError(ErrMsgInvalidCacheSize, nil)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigFileError(path, err)
	}
	return LoadConfig(data)
}

// Options converts the configuration into engine options. Aliases that
// name an unknown built-in are rejected; malformed codes surface when the
// engine is created.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.CacheSize > 0 {
		opts = append(opts, WithCacheSize(c.CacheSize))
	}
	if c.Builtins != nil && !*c.Builtins {
		opts = append(opts, WithoutBuiltins())
	}

	builtins := Builtins()
	codes := make([]string, 0, len(c.Types))
	for code := range c.Types {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		name := c.Types[code]
		f, ok := builtins[name]
		if !ok {
			return nil, NewUnknownBuiltinError(code, name)
		}
		opts = append(opts, WithType(code, f))
	}
	return opts, nil
}
