package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML mirror of the Runner options, so a sweep can be shaped
// by a file instead of flags. Zero fields fall back to defaults.
//
//	distances: [3, 5, 7]
//	output_dir: pcm_matrices
//	concurrency: 2
type Config struct {
	Distances   []int  `yaml:"distances"`
	OutputDir   string `yaml:"output_dir"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the reference sweep configuration.
func DefaultConfig() Config {
	return Config{
		Distances:   DefaultDistances(),
		OutputDir:   DefaultOutputDir,
		Concurrency: DefaultConcurrency,
	}
}

// LoadConfig reads and decodes a YAML config file, applying defaults for
// absent fields and validating the result.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gen: read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("gen: parse config %s: %w", path, err)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate enforces the distance-set contract on a decoded config.
func (c Config) Validate() error {
	return validateDistances(c.Distances)
}

// Options expands the config into Runner options; callers may append more
// (logger, builder) before handing them to NewRunner.
func (c Config) Options() []Option {
	return []Option{
		WithDistances(c.Distances...),
		WithOutputDir(c.OutputDir),
		WithConcurrency(c.Concurrency),
	}
}
