package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/narrator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// clearEnv isolates a test from the caller's ABC_* and API key variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ABC_MUTED", "ABC_MUSIC", "ABC_COLLECTOR", "ABC_NARRATOR", "ABC_TTS_COMMAND",
		"ABC_PLAYER", "ABC_MUSIC_FILE", "ABC_OPENAI_API_KEY", "ABC_OPENAI_MODEL",
		"ABC_OPENAI_VOICE", "ABC_OPENAI_BASE_URL", "ABC_GEMINI_API_KEY", "ABC_GEMINI_MODEL",
		"ABC_GEMINI_VOICE", "ABC_LOG_FILE", "ABC_LOG_LEVEL", "ABC_VOICE_RATE",
		"OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Voice, cfg.Voice)
	assert.True(t, cfg.MusicEnabled)
	assert.False(t, cfg.Muted)
	assert.Equal(t, narrator.BackendAuto, cfg.Narrator.Backend)
	assert.Equal(t, 50.0, cfg.SwipeThreshold)
	assert.Equal(t, 8.0, cfg.Scale.CellWidth)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[audio]
muted = true
rate = 0.9
voice-preference = ["female"]

[narrator]
backend = "command"
command = "espeak-ng"
music-file = "/tmp/song.mp3"
timeout = "5s"

[openai]
voice = "shimmer"

[gesture]
threshold = 30
cell-width = 10

[collector]
enabled = false

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 0.9, cfg.Voice.Rate)
	assert.Equal(t, 1.3, cfg.Voice.Pitch, "unset keys keep defaults")
	assert.Equal(t, []string{"female"}, cfg.Voice.Preference)
	assert.Equal(t, "command", cfg.Narrator.Backend)
	assert.Equal(t, "espeak-ng", cfg.Narrator.Command)
	assert.Equal(t, "/tmp/song.mp3", cfg.Narrator.MusicFile)
	assert.Equal(t, 5*time.Second, cfg.Narrator.Timeout)
	assert.Equal(t, "shimmer", cfg.Narrator.OpenAI.Voice)
	assert.Equal(t, 30.0, cfg.SwipeThreshold)
	assert.Equal(t, 10.0, cfg.Scale.CellWidth)
	assert.Equal(t, 16.0, cfg.Scale.CellHeight)
	assert.False(t, cfg.CollectorEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[audio]
muted = true
[narrator]
backend = "command"
`)
	t.Setenv("ABC_MUTED", "false")
	t.Setenv("ABC_NARRATOR", "silent")
	t.Setenv("ABC_LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Muted)
	assert.Equal(t, "silent", cfg.Narrator.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestStandardKeyDiscovery(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "g-key", cfg.Narrator.Gemini.APIKey)

	t.Setenv("ABC_GEMINI_API_KEY", "abc-key")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "abc-key", cfg.Narrator.Gemini.APIKey)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, `[audio]
muted = "yes"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[audio]
loud = true`))
	assert.ErrorContains(t, err, "audio.loud")

	_, err = Load(writeConfig(t, `[narrator]
timeout = "soon"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[gesture]
threshold = -1`))
	assert.Error(t, err)

	t.Setenv("ABC_MUSIC", "maybe")
	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "abc", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "abc", "abc.log"), DefaultLogPath())
}
