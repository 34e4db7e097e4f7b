package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/narrator"
)

var sayCmd = &cobra.Command{
	Use:   "say <letter|text...>",
	Short: "Speak a letter lesson or any text with the configured narrator",
	Example: `  abc say b          # "B for Ball"
  abc say hello there`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")

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
		defer music.Close()
		defer n.Close()

		text := sayText(args)
		u := audio.Utterance{ID: 1, Text: text, Voice: cfg.Voice}
		if err := n.Speak(u); err != nil {
			return fmt.Errorf("speak %q with %s: %w", text, n.Backend(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🔊 %s\n", text)

		deadline := time.After(timeout)
		for {
			select {
			case ev, ok := <-n.Events():
				if !ok {
					return errors.New("narrator closed before speaking")
				}
				logger.Debug("speech event", zap.Uint64("id", ev.ID), zap.Stringer("kind", ev.Kind))
				switch ev.Kind {
				case audio.SpeechEnded:
					return nil
				case audio.SpeechFailed:
					return ev.Err
				}
			case <-deadline:
				return fmt.Errorf("no speech after %s", timeout)
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	},
}

func init() {
	sayCmd.Flags().Duration("timeout", 30*time.Second, "Give up if speech hasn't finished by then")
}

// sayText turns a single letter into its lesson narration and anything else
// into plain text.
func sayText(args []string) string {
	if len(args) == 1 && utf8.RuneCountInString(args[0]) == 1 {
		r, _ := utf8.DecodeRuneInString(args[0])
		if l, ok := catalog.Lookup(r); ok {
			return l.Narration()
		}
	}
	return strings.Join(args, " ")
}
