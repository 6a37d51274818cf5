// Package config loads cryptolab settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/andrei-cloud/cryptolab/pkg/logger"
)

const (
	defaultLogPath     = "logs/cryptolab.log"
	defaultVectorsPath = "data/vectors.json"
)

// Config holds application settings. An empty LogPath logs to the console.
type Config struct {
	LogPath     string `toml:"log_path"     yaml:"log_path"`
	LogLevel    string `toml:"log_level"    yaml:"log_level"`
	Workers     int    `toml:"workers"      yaml:"workers"`
	VectorsPath string `toml:"vectors_path" yaml:"vectors_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogPath:     defaultLogPath,
		LogLevel:    logger.INFO.String(),
		Workers:     1,
		VectorsPath: defaultVectorsPath,
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse toml file %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse yaml file %q: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.VectorsPath == "" {
		return fmt.Errorf("vectors_path cannot be empty")
	}

	return nil
}

// Level returns the parsed log level, INFO when it is invalid.
func (c Config) Level() logger.Level {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.INFO
	}

	return l
}
