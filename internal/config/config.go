package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/progress"
)

// Config defines configuration for the image fetcher.
type Config struct {
	TargetDir       string        `yaml:"target_dir"`
	MaxFileSize     int64         `yaml:"max_file_size"`
	AllowedTypes    []string      `yaml:"allowed_types"`
	Timeout         time.Duration `yaml:"timeout"`
	Delay           time.Duration `yaml:"delay"`
	UserAgent       string        `yaml:"user_agent"`
	ProgressMinSize int64         `yaml:"progress_min_size"`
}

// DefaultAllowedTypes is the fixed allow-set of image content types.
func DefaultAllowedTypes() []string {
	return []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
		"image/tiff",
		"image/svg+xml",
	}
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		TargetDir:       "Fetched_Images",
		MaxFileSize:     50 * 1024 * 1024, // 50MB
		AllowedTypes:    DefaultAllowedTypes(),
		Timeout:         30 * time.Second,
		Delay:           time.Second,
		ProgressMinSize: 1024 * 1024, // 1MB
	}
}

// yamlConfig is used for YAML unmarshaling with human-readable sizes and
// durations.
type yamlConfig struct {
	TargetDir       string   `yaml:"target_dir"`
	MaxFileSize     string   `yaml:"max_file_size"`
	AllowedTypes    []string `yaml:"allowed_types"`
	Timeout         string   `yaml:"timeout"`
	Delay           string   `yaml:"delay"`
	UserAgent       string   `yaml:"user_agent"`
	ProgressMinSize string   `yaml:"progress_min_size"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.TargetDir != "" {
		cfg.TargetDir = yc.TargetDir
	}
	if yc.MaxFileSize != "" {
		size, err := progress.ParseBytes(yc.MaxFileSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse max_file_size: %w", err)
		}
		cfg.MaxFileSize = size
	}
	if len(yc.AllowedTypes) > 0 {
		cfg.AllowedTypes = yc.AllowedTypes
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.Delay != "" {
		d, err := time.ParseDuration(yc.Delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse delay: %w", err)
		}
		cfg.Delay = d
	}
	if yc.UserAgent != "" {
		cfg.UserAgent = yc.UserAgent
	}
	if yc.ProgressMinSize != "" {
		size, err := progress.ParseBytes(yc.ProgressMinSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse progress_min_size: %w", err)
		}
		cfg.ProgressMinSize = size
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the FETCHER_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("FETCHER_TARGET_DIR"); v != "" {
		c.TargetDir = v
	}
	if v := os.Getenv("FETCHER_MAX_FILE_SIZE"); v != "" {
		size, err := progress.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("parse FETCHER_MAX_FILE_SIZE: %w", err)
		}
		c.MaxFileSize = size
	}
	if v := os.Getenv("FETCHER_ALLOWED_TYPES"); v != "" {
		var types []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		c.AllowedTypes = types
	}
	if v := os.Getenv("FETCHER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse FETCHER_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("FETCHER_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse FETCHER_DELAY: %w", err)
		}
		c.Delay = d
	}
	if v := os.Getenv("FETCHER_USER_AGENT"); v != "" {
		c.UserAgent = v
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.TargetDir == "" {
		return errors.New("config: target_dir is required")
	}
	if c.MaxFileSize <= 0 {
		return errors.New("config: max_file_size must be positive")
	}
	if len(c.AllowedTypes) == 0 {
		return errors.New("config: allowed_types must not be empty")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	if c.Delay < 0 {
		return errors.New("config: delay must not be negative")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.TargetDir != "" {
		c.TargetDir = override.TargetDir
	}
	if override.MaxFileSize != 0 {
		c.MaxFileSize = override.MaxFileSize
	}
	if len(override.AllowedTypes) > 0 {
		c.AllowedTypes = override.AllowedTypes
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.Delay != 0 {
		c.Delay = override.Delay
	}
	if override.UserAgent != "" {
		c.UserAgent = override.UserAgent
	}
	if override.ProgressMinSize != 0 {
		c.ProgressMinSize = override.ProgressMinSize
	}
	return c
}
