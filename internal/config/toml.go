package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	Audio     AudioSection     `toml:"audio"`
	Narrator  NarratorSection  `toml:"narrator"`
	OpenAI    OpenAISection    `toml:"openai"`
	Gemini    GeminiSection    `toml:"gemini"`
	Gesture   GestureSection   `toml:"gesture"`
	Collector CollectorSection `toml:"collector"`
	Log       LogSection       `toml:"log"`
}

// AudioSection maps voice and mute settings.
type AudioSection struct {
	Muted      *bool    `toml:"muted"`
	Music      *bool    `toml:"music"`
	Rate       *float64 `toml:"rate"`
	Pitch      *float64 `toml:"pitch"`
	Volume     *float64 `toml:"volume"`
	Preference []string `toml:"voice-preference"`
}

// NarratorSection maps the speech backend and players.
type NarratorSection struct {
	Backend      *string  `toml:"backend"`
	Command      *string  `toml:"command"`
	Player       *string  `toml:"player"`
	MusicFile    *string  `toml:"music-file"`
	MusicVolume  *float64 `toml:"music-volume"`
	DuckedVolume *float64 `toml:"ducked-volume"`
	CacheSize    *int     `toml:"cache-size"`
	Timeout      *string  `toml:"timeout"`
}

// OpenAISection maps OpenAI speech settings.
type OpenAISection struct {
	APIKey       *string `toml:"api-key"`
	Model        *string `toml:"model"`
	Voice        *string `toml:"voice"`
	Instructions *string `toml:"instructions"`
	BaseURL      *string `toml:"base-url"`
}

// GeminiSection maps Gemini speech settings.
type GeminiSection struct {
	APIKey *string `toml:"api-key"`
	Model  *string `toml:"model"`
	Voice  *string `toml:"voice"`
}

// GestureSection maps swipe settings.
type GestureSection struct {
	Threshold  *float64 `toml:"threshold"`
	CellWidth  *float64 `toml:"cell-width"`
	CellHeight *float64 `toml:"cell-height"`
}

// CollectorSection maps the event collector.
type CollectorSection struct {
	Enabled *bool   `toml:"enabled"`
	Path    *string `toml:"path"`
}

// LogSection maps logging.
type LogSection struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undec[0].String())
	}
	return cfg, nil
}
