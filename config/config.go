// Package config loads the host-facing configuration for cmd/yahaha: the
// REPL banner/prompt/version/license text go-mix's main.go hardcodes as
// package-level vars, generalized here into data read from a YAML file
// so a deployment can re-skin the CLI without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the host configuration for the yahaha CLI.
type Config struct {
	Banner  string   `yaml:"banner"`
	Version string   `yaml:"version"`
	Author  string   `yaml:"author"`
	License string   `yaml:"license"`
	Prompt  string   `yaml:"prompt"`
	Line    string   `yaml:"line"`
	Samples []string `yaml:"samples"`
}

// Default mirrors go-mix's hardcoded BANNER/VERSION/AUTHOR/LICENCE/PROMPT
// constants, used when no config file is supplied or found.
func Default() *Config {
	return &Config{
		Banner: `
 __   __    _           _
 \ \ / /_ _| |__   __ _| |__   __ _
  \ V / _\ | '_ \ / _\ | '_ \ / _\ |
   | | (_| | | | | (_| | | | | (_| |
   |_|\__,_|_| |_|\__,_|_| |_|\__,_|
`,
		Version: "v0.1.0",
		Author:  "yahaha-lang",
		License: "MIT",
		Prompt:  "yahaha> ",
		Line:    "----------------------------------------------------------------",
		Samples: []string{"samples"},
	}
}

// Load reads a YAML config file at path, falling back field-by-field to
// Default() for anything the file leaves unset. A missing file is not an
// error: Load returns Default() unchanged so the CLI runs without one.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.merge(&override)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Banner != "" {
		c.Banner = o.Banner
	}
	if o.Version != "" {
		c.Version = o.Version
	}
	if o.Author != "" {
		c.Author = o.Author
	}
	if o.License != "" {
		c.License = o.License
	}
	if o.Prompt != "" {
		c.Prompt = o.Prompt
	}
	if o.Line != "" {
		c.Line = o.Line
	}
	if len(o.Samples) > 0 {
		c.Samples = o.Samples
	}
}
