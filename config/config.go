// Package config loads edgesort command settings from TOML or YAML files.
//
// A file only needs the keys it overrides; everything else keeps Default():
//
//	[sort]
//	strategy = "radix"
//	base = 16
//	workers = 8
//	parallelScatter = true
//
//	[generate]
//	vertices = 100000
//	edges = 1000000
//	seed = 42
//
//	[log]
//	format = "json"
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgesort/logger"
	"github.com/katalvlaran/edgesort/radix"
)

// Strategy names accepted in [sort].strategy.
const (
	StrategyCounting = "counting"
	StrategyRadix    = "radix"
)

var (
	// ErrUnknownFormat indicates a config file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid indicates a decoded configuration that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// SortConfig selects the strategy and its radix tunables.
type SortConfig struct {
	Strategy        string `toml:"strategy" yaml:"strategy"`
	Base            int    `toml:"base" yaml:"base"`
	Workers         int    `toml:"workers" yaml:"workers"`
	ParallelScatter bool   `toml:"parallelScatter" yaml:"parallelScatter"`
}

// GenerateConfig describes the synthetic edge list the command sorts.
type GenerateConfig struct {
	Vertices int   `toml:"vertices" yaml:"vertices"`
	Edges    int   `toml:"edges" yaml:"edges"`
	Seed     int64 `toml:"seed" yaml:"seed"`
}

// Config is the whole command configuration.
type Config struct {
	Sort     SortConfig     `toml:"sort" yaml:"sort"`
	Generate GenerateConfig `toml:"generate" yaml:"generate"`
	Log      logger.Config  `toml:"log" yaml:"log"`
}

// Default returns the built-in configuration: radix sort with
// radix.DefaultConfig, one million random edges over 100k vertices.
func Default() *Config {
	rc := radix.DefaultConfig()

	return &Config{
		Sort: SortConfig{
			Strategy:        StrategyRadix,
			Base:            rc.Base,
			Workers:         rc.WorkerCount,
			ParallelScatter: rc.ParallelScatter,
		},
		Generate: GenerateConfig{
			Vertices: 100_000,
			Edges:    1_000_000,
			Seed:     1,
		},
		Log: logger.NewConfig(),
	}
}

// Load reads path over Default() and validates the result. The decoder is
// chosen by extension; unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config keys %v: %w", undecoded, ErrInvalid)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q (%s): %w", path, ext, ErrUnknownFormat)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks strategy, radix tunables and generator sizes.
func (c *Config) Validate() error {
	switch c.Sort.Strategy {
	case StrategyCounting, StrategyRadix:
	default:
		return fmt.Errorf("sort.strategy %q: %w", c.Sort.Strategy, ErrInvalid)
	}
	if err := c.Radix().Validate(); err != nil {
		return fmt.Errorf("sort: %v: %w", err, ErrInvalid)
	}
	if c.Generate.Vertices < 1 {
		return fmt.Errorf("generate.vertices=%d < 1: %w", c.Generate.Vertices, ErrInvalid)
	}
	if c.Generate.Edges < 0 {
		return fmt.Errorf("generate.edges=%d < 0: %w", c.Generate.Edges, ErrInvalid)
	}

	return nil
}

// Radix converts the [sort] section into a radix.Config.
func (c *Config) Radix() radix.Config {
	return radix.Config{
		Base:            c.Sort.Base,
		WorkerCount:     c.Sort.Workers,
		ParallelScatter: c.Sort.ParallelScatter,
	}
}
