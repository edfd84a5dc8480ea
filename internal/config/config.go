// Package config provides configuration handling for the poet CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete generation configuration.
type Config struct {
	// OutputDir is the source root generated files are written under,
	// e.g. "src/main/java". Empty means print to stdout.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Indent is the indentation unit used in generated sources.
	Indent string `yaml:"indent" json:"indent"`

	// FileComment is prepended to every generated file as comment lines.
	FileComment string `yaml:"fileComment" json:"fileComment"`

	// Samples names the built-in generators to run when none are given
	// on the command line.
	Samples []string `yaml:"samples" json:"samples"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Indent:      "  ",
		FileComment: "Generated code. Do not edit!",
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)
	return nil
}

// merge merges the loaded config into the current config. Loaded
// values override defaults only when explicitly set.
func (c *Config) merge(loaded *Config) {
	if loaded.OutputDir != "" {
		c.OutputDir = loaded.OutputDir
	}
	if loaded.Indent != "" {
		c.Indent = loaded.Indent
	}
	if loaded.FileComment != "" {
		c.FileComment = loaded.FileComment
	}
	if len(loaded.Samples) > 0 {
		c.Samples = loaded.Samples
	}
}
