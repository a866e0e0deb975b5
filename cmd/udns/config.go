package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// config holds CLI credentials and endpoint settings.
type config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	BaseURL  string `yaml:"base_url"`
}

// loadConfig reads the YAML config file when given, then lets environment
// variables override individual fields.
func loadConfig(path string) (*config, error) {
	cfg := &config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("UDNS_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("UDNS_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("UDNS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("missing credentials: set UDNS_USERNAME/UDNS_PASSWORD or use --config")
	}
	return cfg, nil
}
