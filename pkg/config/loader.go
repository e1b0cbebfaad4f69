package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the main configuration file inside the config dir.
const ConfigFileName = "shipdesk.yaml"

// Initialize loads, merges, validates, and returns ready-to-use
// configuration.
//
// Steps performed:
//  1. Read shipdesk.yaml from configDir (optional; defaults apply without it)
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML
//  4. Merge user config over built-in defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := defaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Warn("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		user := &Config{}
		if err := yaml.Unmarshal(ExpandEnv(data), user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Configuration loaded",
		"phase", cfg.Phase,
		"confidence_threshold", cfg.ConfidenceThreshold,
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}
