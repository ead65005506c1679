package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are optional user-level defaults read from the YAML file named
// by the GGREP_CONFIG environment variable. Command-line flags take
// precedence over anything set here.
type Defaults struct {
	Color       string `yaml:"color"`
	LineNumbers bool   `yaml:"line_numbers"`
}

// LoadDefaults returns nil without error when GGREP_CONFIG is unset.
func LoadDefaults() (*Defaults, error) {
	path := os.Getenv("GGREP_CONFIG")
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse defaults %s: %w", path, err)
	}
	if d.Color != "" {
		if _, err := ParseColorMode(d.Color); err != nil {
			return nil, fmt.Errorf("defaults %s: %w", path, err)
		}
	}
	return &d, nil
}
