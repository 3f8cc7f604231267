package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Catalog.BaseURL == "" {
		t.Error("catalog base_url should default")
	}
	if cfg.Catalog.PageSize != 20 {
		t.Errorf("page_size = %d, want 20", cfg.Catalog.PageSize)
	}
	if cfg.Playback.PollInterval != 200 {
		t.Errorf("poll_interval = %d, want 200", cfg.Playback.PollInterval)
	}
	if cfg.Haptics.Mode != "bell" {
		t.Errorf("haptics mode = %q, want bell", cfg.Haptics.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Catalog.PageSize = 50
	cfg.TUI.Theme = "dark"
	cfg.ApplyDefaults()

	if cfg.Catalog.PageSize != 50 {
		t.Errorf("page_size = %d, want explicit 50", cfg.Catalog.PageSize)
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.TUI.Theme)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[catalog]
base_url = "https://catalog.test/v2"
page_size = 5

[playback]
volume = 40

[haptics]
mode = "off"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Catalog.BaseURL != "https://catalog.test/v2" {
		t.Errorf("base_url = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.PageSize != 5 {
		t.Errorf("page_size = %d, want 5", cfg.Catalog.PageSize)
	}
	if cfg.Playback.Volume != 40 {
		t.Errorf("volume = %d, want 40", cfg.Playback.Volume)
	}
	if cfg.Haptics.Mode != "off" {
		t.Errorf("haptics mode = %q, want off", cfg.Haptics.Mode)
	}
	// Unset fields fall back to defaults.
	if cfg.Playback.PollInterval != 200 {
		t.Errorf("poll_interval = %d, want default 200", cfg.Playback.PollInterval)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TUNESNIP_CATALOG_BASE_URL", "https://override.test")
	t.Setenv("TUNESNIP_PLAYBACK_VOLUME", "55")
	t.Setenv("TUNESNIP_HAPTICS_MODE", "off")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Catalog.BaseURL != "https://override.test" {
		t.Errorf("base_url = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Playback.Volume != 55 {
		t.Errorf("volume = %d, want 55", cfg.Playback.Volume)
	}
	if cfg.Haptics.Mode != "off" {
		t.Errorf("haptics mode = %q, want off", cfg.Haptics.Mode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad base url", func(c *Config) { c.Catalog.BaseURL = "not a url" }, true},
		{"page size too large", func(c *Config) { c.Catalog.PageSize = 500 }, true},
		{"negative poll", func(c *Config) { c.Playback.PollInterval = -1 }, true},
		{"volume out of range", func(c *Config) { c.Playback.Volume = 150 }, true},
		{"bad haptics mode", func(c *Config) { c.Haptics.Mode = "rumble" }, true},
		{"bad theme", func(c *Config) { c.TUI.Theme = "solarized" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
