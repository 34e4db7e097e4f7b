package narrator

import (
	"fmt"
	"os"
	"time"
)

// Backend names.
const (
	BackendAuto    = "auto"
	BackendCommand = "command"
	BackendOpenAI  = "openai"
	BackendGemini  = "gemini"
	BackendSilent  = "silent"
	BackendMock    = "mock"
)

// Config holds all narration configuration.
type Config struct {
	// Backend selects the speech backend.
	// Values: "auto", "command", "openai", "gemini", "silent"
	Backend string

	// Command is the system TTS program ("espeak-ng", "espeak", "say").
	// Empty searches PATH.
	Command string

	// Player is the audio player program ("afplay", "paplay", "aplay",
	// "ffplay"). Empty searches PATH.
	Player string

	// MusicFile is looped as background music when set.
	MusicFile string

	// MusicVolume and DuckedVolume are in [0,1].
	MusicVolume  float64
	DuckedVolume float64

	OpenAI OpenAIConfig
	Gemini GeminiConfig
	Retry  RetryConfig

	// CacheSize is the number of synthesized clips kept in memory.
	CacheSize int

	// Timeout bounds a single synthesis request including retries.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI speech configuration.
type OpenAIConfig struct {
	APIKey       string
	Model        string // Default: "gpt-4o-mini-tts"
	Voice        string // Default: "nova"
	Instructions string
	BaseURL      string
}

// GeminiConfig holds Gemini speech configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.5-flash-preview-tts"
	Voice  string // Default: "Leda"

	// BaseURL overrides the API endpoint.
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:      BackendAuto,
		MusicVolume:  0.3,
		DuckedVolume: 0.1,
		OpenAI: OpenAIConfig{
			Model:        "gpt-4o-mini-tts",
			Voice:        "nova",
			Instructions: "Speak slowly and cheerfully, like a kind teacher talking to a young child.",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash-preview-tts",
			Voice: "Leda",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		CacheSize: 64,
		Timeout:   20 * time.Second,
	}
}

// DiscoverKeys fills empty API keys from the providers' standard
// environment variables.
func (c *Config) DiscoverKeys() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("an OpenAI API key is required for the openai backend")
		}
	case BackendGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("a Gemini API key is required for the gemini backend")
		}
	case BackendAuto, BackendCommand, BackendSilent, BackendMock:
	default:
		return fmt.Errorf("unknown speech backend: %q", c.Backend)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 || c.DuckedVolume < 0 || c.DuckedVolume > 1 {
		return fmt.Errorf("music volumes must be within [0,1]")
	}
	return nil
}
