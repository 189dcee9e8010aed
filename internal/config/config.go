// Package config holds the scan tuning values and their TOML file form.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	// DefaultThreshold is the p-value a window must be strictly below.
	DefaultThreshold = 0.001
	// DefaultGranularity is the target region size in bytes, roughly 100
	// FASTA entries of a typical promoter-set input.
	DefaultGranularity = 8400
)

// Config controls a scan. Zero Threads means all CPUs.
type Config struct {
	Threshold   float64 `toml:"threshold"`
	Granularity int     `toml:"granularity"`
	Threads     int     `toml:"threads"`
	Mmap        bool    `toml:"mmap"`
	Serial      bool    `toml:"serial"`
	Format      string  `toml:"format"`
	LogLevel    string  `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold:   DefaultThreshold,
		Granularity: DefaultGranularity,
		Format:      "tsv",
		LogLevel:    "info",
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrap(err, path)
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !(c.Threshold > 0 && c.Threshold <= 1) {
		return errors.Errorf("threshold must be in (0, 1], got %g", c.Threshold)
	}
	if c.Granularity < 1 {
		return errors.Errorf("granularity must be ≥ 1, got %d", c.Granularity)
	}
	if c.Threads < 0 {
		return errors.Errorf("threads must be ≥ 0, got %d", c.Threads)
	}
	switch c.Format {
	case "tsv", "jsonl":
	default:
		return errors.Errorf("invalid format %q (tsv | jsonl)", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
