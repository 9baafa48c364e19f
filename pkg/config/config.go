// Package config provides configuration loading and management for lanedetect.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Detector parameters for the sliding-window search
	Detector struct {
		// Windows is the number of search bands stacked per pass
		Windows int `yaml:"windows"`

		// Margin is the half-width of each search band in pixels
		Margin int `yaml:"margin"`

		// MinPixels is the band pixel count that triggers recentring
		MinPixels int `yaml:"minPixels"`

		// MinSamples is the per-side pixel count required to refit the curve
		MinSamples int `yaml:"minSamples"`
	} `yaml:"detector"`

	// Threshold parameters for binarizing grayscale input frames
	Threshold struct {
		// Level is the intensity cutoff; pixels at or above it become foreground
		Level uint8 `yaml:"level"`
	} `yaml:"threshold"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`

		// SaveWindows determines whether the sliding-window debug image is saved
		SaveWindows bool `yaml:"saveWindows"`

		// SaveHistogram determines whether the column-profile chart is saved
		SaveHistogram bool `yaml:"saveHistogram"`

		// DebugDir is the directory debug artifacts are written to
		DebugDir string `yaml:"debugDir"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default detector parameters
	cfg.Detector.Windows = 12
	cfg.Detector.Margin = 20
	cfg.Detector.MinPixels = 50
	cfg.Detector.MinSamples = 1500

	// Set default threshold parameters
	cfg.Threshold.Level = 128

	// Set default output parameters
	cfg.Output.Verbose = true
	cfg.Output.SaveWindows = false
	cfg.Output.SaveHistogram = false
	cfg.Output.DebugDir = "debug"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
