package narrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

// New creates the narrator and music player from configuration. The
// synthesizer is wrapped with middleware: caller → cache → retry →
// recording → backend.
//
// In auto mode a missing player or TTS program degrades to a Silent
// narrator instead of failing; an explicitly selected backend that can't be
// built is an error.
func New(ctx context.Context, cfg Config, collector *store.Collector, logger *zap.Logger) (Narrator, *MusicPlayer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if cfg.Backend == BackendSilent {
		return NewSilent(""), NewMusicPlayer(nil, "", 0, 0, logger), nil
	}

	player, err := NewCommandPlayer(cfg.Player)
	if err != nil {
		if cfg.Backend != BackendAuto {
			return nil, nil, err
		}
		logger.Warn("no audio player, narration disabled", zap.Error(err))
		return NewSilent("no audio player"), NewMusicPlayer(nil, "", 0, 0, logger), nil
	}
	music := NewMusicPlayer(player, cfg.MusicFile, cfg.MusicVolume, cfg.DuckedVolume, logger)

	base, err := newSynth(ctx, cfg, logger)
	if err != nil {
		if cfg.Backend != BackendAuto {
			return nil, nil, fmt.Errorf("initializing %s backend: %w", cfg.Backend, err)
		}
		logger.Warn("no speech backend, narration disabled", zap.Error(err))
		return NewSilent("no speech backend"), music, nil
	}

	recorded := WithRecording(base, collector, logger.Named("synth"))
	retried := WithRetry(recorded, cfg.Retry)
	cached, err := WithCache(retried, cfg.CacheSize)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("narrator ready",
		zap.String("backend", base.Name()), zap.String("player", player.Name()))
	return NewClipNarrator(cached, player, Options{
		Collector: collector,
		Logger:    logger,
		Timeout:   cfg.Timeout,
	}), music, nil
}

func newSynth(ctx context.Context, cfg Config, logger *zap.Logger) (Synthesizer, error) {
	switch cfg.Backend {
	case BackendOpenAI:
		return NewOpenAISynth(cfg.OpenAI)
	case BackendGemini:
		return NewGeminiSynth(ctx, cfg.Gemini)
	case BackendCommand:
		return NewCommandSynth(cfg.Command)
	case BackendMock:
		return NewMockSynth(), nil
	case BackendAuto:
		if cfg.OpenAI.APIKey != "" {
			return NewOpenAISynth(cfg.OpenAI)
		}
		if cfg.Gemini.APIKey != "" {
			return NewGeminiSynth(ctx, cfg.Gemini)
		}
		logger.Debug("no cloud speech key, trying system TTS")
		return NewCommandSynth(cfg.Command)
	}
	return nil, fmt.Errorf("unknown speech backend: %q", cfg.Backend)
}
