package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:  "https://api.taatom.app/v1",
			PageSize: 20,
		},
		Playback: PlaybackConfig{
			PollInterval: 200,
			Volume:       80,
		},
		Haptics: HapticsConfig{
			Mode: "bell",
		},
		TUI: TUIConfig{
			Theme:           "auto",
			RefreshInterval: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Catalog
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = d.Catalog.BaseURL
	}
	if c.Catalog.PageSize == 0 {
		c.Catalog.PageSize = d.Catalog.PageSize
	}

	// Playback
	if c.Playback.PollInterval == 0 {
		c.Playback.PollInterval = d.Playback.PollInterval
	}
	if c.Playback.Volume == 0 {
		c.Playback.Volume = d.Playback.Volume
	}

	// Haptics
	if c.Haptics.Mode == "" {
		c.Haptics.Mode = d.Haptics.Mode
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
