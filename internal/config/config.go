// Package config loads the settings shared by the elligator1174 tools.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// Output formats for numbers.
const (
	FormatHex     = "hex"
	FormatDecimal = "dec"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds tool settings. Zero fields are filled by Default.
type Config struct {
	Backend   string `yaml:"backend"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	LogOutput string `yaml:"log_output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend:   api.BackendReference,
		Format:    FormatHex,
		LogLevel:  "info",
		LogOutput: "stderr",
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: open")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Backend {
	case api.BackendReference, api.BackendFast:
	default:
		return errors.Wrapf(ErrInvalidConfig, "backend %q", c.Backend)
	}
	switch c.Format {
	case FormatHex, FormatDecimal:
	default:
		return errors.Wrapf(ErrInvalidConfig, "format %q", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	return nil
}

// Marshal returns c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
