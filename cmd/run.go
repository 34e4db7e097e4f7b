package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/app"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/narrator"
)

// runApp resolves configuration, builds the narrator and collector, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	letter, _ := cmd.Flags().GetString("letter")
	start, err := parseLetter(letter)
	if err != nil {
		return err
	}
	skipSplash, _ := cmd.Flags().GetBool("skip-splash")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	collector, closeStore, err := openCollector(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	n, music, err := narrator.New(ctx, cfg.Narrator, collector, logger)
	if err != nil {
		return fmt.Errorf("narrator: %w", err)
	}
	defer func() {
		if err := music.Close(); err != nil {
			logger.Warn("closing music", zap.Error(err))
		}
		if err := n.Close(); err != nil {
			logger.Warn("closing narrator", zap.Error(err))
		}
	}()

	loop := clock.NewLoop(64)
	defer loop.Close()

	logger.Info("starting",
		zap.String("backend", n.Backend()),
		zap.String("collector_session", collector.SessionID()),
		zap.Int("start", start))

	return app.Run(app.Options{
		Queue:          loop,
		Narrator:       n,
		Music:          music,
		Collector:      collector,
		Muted:          cfg.Muted,
		MusicEnabled:   cfg.MusicEnabled,
		Voice:          cfg.Voice,
		SwipeThreshold: cfg.SwipeThreshold,
		Scale:          cfg.Scale,
		StartLetter:    start,
		SkipSplash:     skipSplash,
		Logger:         logger,
	})
}

// parseLetter maps a single letter (either case) to its catalog index.
func parseLetter(s string) (int, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("letter must be a single character, got %q", s)
	}
	i := catalog.IndexOf(r)
	if i < 0 {
		return 0, fmt.Errorf("%q is not a letter A-Z", s)
	}
	return i, nil
}
