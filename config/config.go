// Package config loads the service configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MemoryDSN keeps the result store in process memory only.
const MemoryDSN = ":memory:"

type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
}

type ServerConfig struct {
	Listen      string `yaml:"listen"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type AnalyzerConfig struct {
	Delay      time.Duration `yaml:"delay"`
	Jitter     bool          `yaml:"jitter"`
	JitterSeed uint64        `yaml:"jitter_seed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Listen:      ":8081",
			MaxUploadMB: 10,
		},
		Database: DatabaseConfig{
			DSN: MemoryDSN,
		},
		Analyzer: AnalyzerConfig{
			Delay:  700 * time.Millisecond,
			Jitter: true,
		},
	}
}

// Load reads filename over the defaults. A missing file yields the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", filename, err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing yaml: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Server.Listen == "" {
		return errors.New("server.listen must not be empty")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn must not be empty")
	}
	if c.Analyzer.Delay < 0 {
		return fmt.Errorf("analyzer.delay must not be negative, got %s", c.Analyzer.Delay)
	}
	return nil
}
