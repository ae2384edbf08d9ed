package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.TargetDir != "Fetched_Images" {
		t.Errorf("expected default target dir Fetched_Images, got %q", cfg.TargetDir)
	}
	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("expected default max file size 50MB, got %d", cfg.MaxFileSize)
	}
	if len(cfg.AllowedTypes) != 8 {
		t.Errorf("expected 8 default allowed types, got %d", len(cfg.AllowedTypes))
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.Delay != time.Second {
		t.Errorf("expected default delay 1s, got %v", cfg.Delay)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	yamlContent := `
target_dir: My_Images
max_file_size: 10MB
allowed_types:
  - image/png
timeout: 10s
delay: 2s
user_agent: custom-agent/1.0
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.TargetDir != "My_Images" {
		t.Errorf("expected target dir My_Images, got %q", cfg.TargetDir)
	}
	if cfg.MaxFileSize != 10*1024*1024 {
		t.Errorf("expected max file size 10MB, got %d", cfg.MaxFileSize)
	}
	if len(cfg.AllowedTypes) != 1 || cfg.AllowedTypes[0] != "image/png" {
		t.Errorf("expected allowed types [image/png], got %v", cfg.AllowedTypes)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.Delay != 2*time.Second {
		t.Errorf("expected delay 2s, got %v", cfg.Delay)
	}
	if cfg.UserAgent != "custom-agent/1.0" {
		t.Errorf("expected custom user agent, got %q", cfg.UserAgent)
	}
}

func TestLoadFromYAMLPartial(t *testing.T) {
	yamlContent := "max_file_size: 5MB\n"

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.MaxFileSize != 5*1024*1024 {
		t.Errorf("expected max file size 5MB, got %d", cfg.MaxFileSize)
	}
	// Unset fields keep their defaults.
	if cfg.TargetDir != "Fetched_Images" {
		t.Errorf("expected default target dir, got %q", cfg.TargetDir)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FETCHER_TARGET_DIR", "Env_Images")
	t.Setenv("FETCHER_MAX_FILE_SIZE", "1GB")
	t.Setenv("FETCHER_ALLOWED_TYPES", "image/png, image/gif")
	t.Setenv("FETCHER_TIMEOUT", "45s")
	t.Setenv("FETCHER_DELAY", "500ms")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.TargetDir != "Env_Images" {
		t.Errorf("expected target dir Env_Images, got %q", cfg.TargetDir)
	}
	if cfg.MaxFileSize != 1024*1024*1024 {
		t.Errorf("expected max file size 1GB, got %d", cfg.MaxFileSize)
	}
	if len(cfg.AllowedTypes) != 2 {
		t.Errorf("expected 2 allowed types, got %v", cfg.AllowedTypes)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.Timeout)
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("expected delay 500ms, got %v", cfg.Delay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty target dir", func(c *Config) { c.TargetDir = "" }, true},
		{"zero max size", func(c *Config) { c.MaxFileSize = 0 }, true},
		{"no allowed types", func(c *Config) { c.AllowedTypes = nil }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative delay", func(c *Config) { c.Delay = -time.Second }, true},
		{"zero delay ok", func(c *Config) { c.Delay = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(Config{
		TargetDir:   "Override",
		MaxFileSize: 1024,
	})

	if merged.TargetDir != "Override" {
		t.Errorf("expected overridden target dir, got %q", merged.TargetDir)
	}
	if merged.MaxFileSize != 1024 {
		t.Errorf("expected overridden max size, got %d", merged.MaxFileSize)
	}
	// Zero values in the override are ignored.
	if merged.Timeout != base.Timeout {
		t.Errorf("expected base timeout, got %v", merged.Timeout)
	}
	if len(merged.AllowedTypes) != len(base.AllowedTypes) {
		t.Errorf("expected base allowed types, got %v", merged.AllowedTypes)
	}
}
