// Package config provides configuration loading for the epicycle command
// line tools. It handles loading settings from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	epicycles "github.com/tphakala/go-epicycles"
)

// Config represents the tool configuration loaded from YAML.
type Config struct {
	// Transform parameters
	Transform struct {
		// Workers is the number of goroutines computing frequency bins.
		// Zero means one worker per CPU core.
		Workers int `yaml:"workers"`

		// ProgressInterval is the number of frequency bins between
		// progress reports.
		ProgressInterval int `yaml:"progressInterval"`

		// DecimationTarget is the point count paths are thinned to before
		// the quadratic transform. Zero disables decimation.
		DecimationTarget int `yaml:"decimationTarget"`
	} `yaml:"transform"`

	// Output parameters
	Output struct {
		// SortByAmplitude writes coefficients largest-first instead of in
		// frequency order.
		SortByAmplitude bool `yaml:"sortByAmplitude"`

		// Verbose controls progress and summary printing.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`

	// Trace parameters for path replay
	Trace struct {
		// SampleRate is the rate stamped on exported WAV paths in Hz.
		SampleRate int `yaml:"sampleRate"`

		// Revolutions is how many full turns of the fundamental to trace.
		Revolutions int `yaml:"revolutions"`
	} `yaml:"trace"`
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}

	cfg.Transform.Workers = runtime.NumCPU()
	cfg.Transform.ProgressInterval = epicycles.DefaultProgressInterval
	cfg.Transform.DecimationTarget = epicycles.DefaultDecimationTarget

	cfg.Output.SortByAmplitude = false
	cfg.Output.Verbose = true

	cfg.Trace.SampleRate = 44100
	cfg.Trace.Revolutions = 1

	return cfg
}

// Load loads configuration from a YAML file. If the file doesn't exist, it
// returns the default configuration. Settings absent from the file keep
// their defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file, creating the directory if
// needed.
func Save(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultFile writes a default configuration file at the specified
// path, ready for editing.
func CreateDefaultFile(configPath string) error {
	return Save(Default(), configPath)
}
