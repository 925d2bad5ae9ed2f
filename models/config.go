// Package models defines configuration, request and result structures shared
// between the CLI layer and the engine packages.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the CMS API the tool talks to unless the config file
// overrides it.
const DefaultBaseURL = "https://api.example-cms.com/v2/"

// Config holds file-backed settings. The token can also be supplied per
// invocation via --token or the CMSGREP_TOKEN environment variable.
type Config struct {
	BaseURL        string   `yaml:"base_url"`
	Token          string   `yaml:"token"`
	PageTypes      []string `yaml:"page_types"`
	CollectionKeys []string `yaml:"collection_keys"`
	Workers        int      `yaml:"workers"`
}

// LoadConfig reads a YAML config file. A missing file is not an error; the
// defaults are returned so the tool works with flags alone.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		BaseURL: DefaultBaseURL,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}

// WorkerCount returns the configured fan-out width with a sane default.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return 4
}
