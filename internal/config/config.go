// Package config loads the optional YAML file describing a populate run.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values for a populate run.
const (
	DefaultFileName = ".populate.yaml"
	DefaultCount    = 30
	DefaultTimeout  = 30 * time.Second
)

// Config holds the parsed configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version    int      `yaml:"version"`
	Path       string   `yaml:"path"`     // the CLI executable
	Args       []string `yaml:"args"`     // e.g. the db file
	RawCount   int      `yaml:"count"`    // number of inserts
	Seed       *int64   `yaml:"seed"`     // unset means seed from the clock
	RawTimeout string   `yaml:"timeout"`  // e.g. "5m", "30s"
	SaveDir    string   `yaml:"save_dir"` // where transcripts go, if anywhere
}

// Count returns the configured insert count or the default.
func (c *Config) Count() int {
	if c.RawCount > 0 {
		return c.RawCount
	}
	return DefaultCount
}

// Timeout returns the configured timeout or the default.
func (c *Config) Timeout() time.Duration {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// Validate reports values that are present but unusable.
func (c *Config) Validate() error {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err != nil {
			return errors.Wrapf(err, "bad timeout %q", c.RawTimeout)
		}
		if d <= 0 {
			return errors.Errorf("timeout %q must be positive", c.RawTimeout)
		}
	}
	if c.RawCount < 0 {
		return errors.Errorf("count %d is negative", c.RawCount)
	}
	return nil
}

// Load reads the config file at path.  If the file doesn't exist, a
// default Config is returned, unless mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}
