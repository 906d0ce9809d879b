// Package config resolves runtime settings from defaults, the optional
// workspace config file and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "gpt-4o"
	DefaultMaxTokens   = 4096
	DefaultScanTimeout = 120 * time.Second

	configFileName = "config.yaml"
	storeDirName   = ".specmap"
)

// Duration is a time.Duration that yaml-decodes from strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds everything the CLI and MCP server need to wire the store
// and the analysis service.
type Config struct {
	Workspace   string   `yaml:"workspace"`
	Model       string   `yaml:"model"`
	MaxTokens   int      `yaml:"maxTokens"`
	ScanTimeout Duration `yaml:"scanTimeout"`
	BaseURL     string   `yaml:"baseUrl"`
}

// Workspace returns the workspace path from the SPECMAP_WORKSPACE env
// var, falling back to the current directory.
func Workspace() string {
	if env := os.Getenv("SPECMAP_WORKSPACE"); env != "" {
		return env
	}
	return "."
}

// Load resolves the configuration for a workspace: defaults, then the
// workspace's .specmap/config.yaml if present, then env overrides. A
// missing config file is not an error; a malformed one is.
func Load(workspace string) (*Config, error) {
	cfg := &Config{
		Workspace:   workspace,
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		ScanTimeout: Duration(DefaultScanTimeout),
	}

	path := filepath.Join(workspace, storeDirName, configFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		// the file never relocates its own workspace
		cfg.Workspace = workspace
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if env := os.Getenv("SPECMAP_MODEL"); env != "" {
		cfg.Model = env
	}
	if env := os.Getenv("SPECMAP_MAX_TOKENS"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return nil, fmt.Errorf("invalid SPECMAP_MAX_TOKENS: %w", err)
		}
		cfg.MaxTokens = n
	}
	if env := os.Getenv("SPECMAP_BASE_URL"); env != "" {
		cfg.BaseURL = env
	}

	return cfg, nil
}
