package config

// Config is the root configuration structure.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Playback PlaybackConfig `toml:"playback"`
	Haptics  HapticsConfig  `toml:"haptics"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// CatalogConfig holds song lookup service settings.
type CatalogConfig struct {
	BaseURL  string `toml:"base_url"`
	PageSize int    `toml:"page_size"`
}

// PlaybackConfig holds audio playback settings.
type PlaybackConfig struct {
	PollInterval int `toml:"poll_interval"` // position poll, milliseconds
	Volume       int `toml:"volume"`
}

// HapticsConfig holds feedback pulse settings.
type HapticsConfig struct {
	Mode string `toml:"mode"` // bell or off
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"` // milliseconds
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
