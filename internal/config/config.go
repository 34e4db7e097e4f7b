// Package config resolves settings from defaults, a TOML file and the
// environment. Command-line flags are applied on top by the cmd package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/gesture"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/narrator"
)

// Config is the fully resolved configuration.
type Config struct {
	Muted        bool
	MusicEnabled bool
	Voice        audio.VoiceOptions

	Narrator narrator.Config

	SwipeThreshold float64
	Scale          gesture.Scale

	CollectorEnabled bool
	CollectorPath    string // empty uses store.DefaultDBPath

	LogFile  string // "-" disables logging
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MusicEnabled:     true,
		Voice:            audio.DefaultVoice(),
		Narrator:         narrator.DefaultConfig(),
		SwipeThreshold:   gesture.DefaultThreshold,
		Scale:            gesture.DefaultScale,
		CollectorEnabled: true,
		LogFile:          DefaultLogPath(),
		LogLevel:         "info",
	}
}

// Load resolves defaults, then the file at path, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(fc); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	cfg.Narrator.DiscoverKeys()
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Voice.Rate <= 0 || c.Voice.Pitch <= 0 {
		return fmt.Errorf("voice rate and pitch must be positive")
	}
	if c.Voice.Volume < 0 || c.Voice.Volume > 1 {
		return fmt.Errorf("voice volume must be within [0,1]")
	}
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe threshold must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return c.Narrator.Validate()
}

func (c *Config) applyFile(fc FileConfig) error {
	setBool(&c.Muted, fc.Audio.Muted)
	setBool(&c.MusicEnabled, fc.Audio.Music)
	setFloat(&c.Voice.Rate, fc.Audio.Rate)
	setFloat(&c.Voice.Pitch, fc.Audio.Pitch)
	setFloat(&c.Voice.Volume, fc.Audio.Volume)
	if len(fc.Audio.Preference) > 0 {
		c.Voice.Preference = fc.Audio.Preference
	}

	n := &c.Narrator
	setString(&n.Backend, fc.Narrator.Backend)
	setString(&n.Command, fc.Narrator.Command)
	setString(&n.Player, fc.Narrator.Player)
	setString(&n.MusicFile, fc.Narrator.MusicFile)
	setFloat(&n.MusicVolume, fc.Narrator.MusicVolume)
	setFloat(&n.DuckedVolume, fc.Narrator.DuckedVolume)
	if fc.Narrator.CacheSize != nil {
		n.CacheSize = *fc.Narrator.CacheSize
	}
	if fc.Narrator.Timeout != nil {
		d, err := time.ParseDuration(*fc.Narrator.Timeout)
		if err != nil {
			return fmt.Errorf("narrator.timeout: %w", err)
		}
		n.Timeout = d
	}

	setString(&n.OpenAI.APIKey, fc.OpenAI.APIKey)
	setString(&n.OpenAI.Model, fc.OpenAI.Model)
	setString(&n.OpenAI.Voice, fc.OpenAI.Voice)
	setString(&n.OpenAI.Instructions, fc.OpenAI.Instructions)
	setString(&n.OpenAI.BaseURL, fc.OpenAI.BaseURL)
	setString(&n.Gemini.APIKey, fc.Gemini.APIKey)
	setString(&n.Gemini.Model, fc.Gemini.Model)
	setString(&n.Gemini.Voice, fc.Gemini.Voice)

	setFloat(&c.SwipeThreshold, fc.Gesture.Threshold)
	setFloat(&c.Scale.CellWidth, fc.Gesture.CellWidth)
	setFloat(&c.Scale.CellHeight, fc.Gesture.CellHeight)

	setBool(&c.CollectorEnabled, fc.Collector.Enabled)
	setString(&c.CollectorPath, fc.Collector.Path)

	setString(&c.LogFile, fc.Log.File)
	setString(&c.LogLevel, fc.Log.Level)
	return nil
}

// applyEnv reads ABC_* variables through getenv.
func (c *Config) applyEnv(getenv func(string) string) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"ABC_MUTED", &c.Muted},
		{"ABC_MUSIC", &c.MusicEnabled},
		{"ABC_COLLECTOR", &c.CollectorEnabled},
	}
	for _, b := range bools {
		if v := getenv(b.key); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", b.key, err)
			}
			*b.dst = parsed
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ABC_NARRATOR", &c.Narrator.Backend},
		{"ABC_TTS_COMMAND", &c.Narrator.Command},
		{"ABC_PLAYER", &c.Narrator.Player},
		{"ABC_MUSIC_FILE", &c.Narrator.MusicFile},
		{"ABC_OPENAI_API_KEY", &c.Narrator.OpenAI.APIKey},
		{"ABC_OPENAI_MODEL", &c.Narrator.OpenAI.Model},
		{"ABC_OPENAI_VOICE", &c.Narrator.OpenAI.Voice},
		{"ABC_OPENAI_BASE_URL", &c.Narrator.OpenAI.BaseURL},
		{"ABC_GEMINI_API_KEY", &c.Narrator.Gemini.APIKey},
		{"ABC_GEMINI_MODEL", &c.Narrator.Gemini.Model},
		{"ABC_GEMINI_VOICE", &c.Narrator.Gemini.Voice},
		{"ABC_LOG_FILE", &c.LogFile},
		{"ABC_LOG_LEVEL", &c.LogLevel},
	}
	for _, s := range strs {
		if v := getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	if v := getenv("ABC_VOICE_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ABC_VOICE_RATE: %w", err)
		}
		c.Voice.Rate = f
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
