// Package config holds the demo pipeline configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the demo configuration.
type AppConfig struct {
	Demo     DemoConfig     `toml:"demo"`
	Pipeline PipelineConfig `toml:"pipeline"`
}

// DemoConfig names the files the demo reads and writes.
type DemoConfig struct {
	Input        string `toml:"input"`
	OutputSuffix string `toml:"output_suffix"`
}

// PipelineConfig tunes the transformation steps.
type PipelineConfig struct {
	VATRate         float64 `toml:"vat_rate"`
	DefaultCategory string  `toml:"default_category"`
	DefaultAmount   float64 `toml:"default_amount"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Demo: DemoConfig{
			Input:        "Input.xlsx",
			OutputSuffix: "_OUT.xlsx",
		},
		Pipeline: PipelineConfig{
			VATRate:         0.20,
			DefaultCategory: "All",
			DefaultAmount:   1.0,
		},
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that required values are set.
func (c *AppConfig) Validate() error {
	if c.Demo.Input == "" {
		return errors.New("demo.input must not be empty")
	}
	if c.Demo.OutputSuffix == "" {
		return errors.New("demo.output_suffix must not be empty")
	}
	if c.Pipeline.VATRate < 0 {
		return errors.New("pipeline.vat_rate must not be negative")
	}
	if c.Pipeline.DefaultCategory == "" {
		return errors.New("pipeline.default_category must not be empty")
	}
	return nil
}
