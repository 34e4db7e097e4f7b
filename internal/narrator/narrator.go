package narrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

// cueVolume is the player volume for success and try-again cues.
const cueVolume = 0.8

// Narrator is an audio.Narrator that owns background work and must be closed.
type Narrator interface {
	audio.Narrator

	// Backend names the synthesizer in use.
	Backend() string

	// Close stops all playback, waits for it to finish and closes Events.
	Close() error
}

// Options configures a ClipNarrator.
type Options struct {
	Collector *store.Collector
	Logger    *zap.Logger

	// Timeout bounds synthesis of one utterance. Zero means no limit.
	Timeout time.Duration
}

// ClipNarrator speaks by synthesizing a clip and playing it. Only one
// utterance plays at a time; Speak cancels the previous one.
type ClipNarrator struct {
	synth     Synthesizer
	player    Player
	collector *store.Collector
	logger    *zap.Logger
	timeout   time.Duration

	root   context.Context
	stop   context.CancelFunc
	events chan audio.SpeechEvent
	wg     sync.WaitGroup

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
}

var _ Narrator = (*ClipNarrator)(nil)

// NewClipNarrator creates a ClipNarrator.
func NewClipNarrator(synth Synthesizer, player Player, opts Options) *ClipNarrator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	root, stop := context.WithCancel(context.Background())
	return &ClipNarrator{
		synth:     synth,
		player:    player,
		collector: opts.Collector,
		logger:    logger.Named("narrator"),
		timeout:   opts.Timeout,
		root:      root,
		stop:      stop,
		events:    make(chan audio.SpeechEvent, 8),
	}
}

func (n *ClipNarrator) Speak(u audio.Utterance) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return fmt.Errorf("%w: narrator closed", audio.ErrNarrationUnavailable)
	}
	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(n.root)
	n.cancel = cancel

	n.wg.Add(1)
	go n.speak(ctx, u)
	return nil
}

func (n *ClipNarrator) speak(ctx context.Context, u audio.Utterance) {
	defer n.wg.Done()

	synthCtx := ctx
	if n.timeout > 0 {
		var cancel context.CancelFunc
		synthCtx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	clip, err := n.synth.Synthesize(synthCtx, Request{Text: u.Text, Voice: u.Voice})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		n.emit(audio.SpeechEvent{ID: u.ID, Kind: audio.SpeechFailed,
			Err: fmt.Errorf("%w: %w", audio.ErrNarrationUnavailable, err)})
		return
	}

	n.emit(audio.SpeechEvent{ID: u.ID, Kind: audio.SpeechStarted})
	err = playClip(ctx, n.player, clip, u.Voice.Volume)
	switch {
	case err == nil, ctx.Err() != nil:
		n.emit(audio.SpeechEvent{ID: u.ID, Kind: audio.SpeechEnded})
	default:
		n.logger.Warn("playback failed", zap.Uint64("utterance", u.ID), zap.Error(err))
		n.emit(audio.SpeechEvent{ID: u.ID, Kind: audio.SpeechFailed, Err: err})
	}
}

func (n *ClipNarrator) emit(ev audio.SpeechEvent) {
	select {
	case n.events <- ev:
	case <-n.root.Done():
	}
}

// PlayCue plays c without interrupting narration.
func (n *ClipNarrator) PlayCue(c audio.Cue) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return fmt.Errorf("%w: narrator closed", audio.ErrNarrationUnavailable)
	}

	clip, err := CueClip(c)
	if err != nil {
		return err
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		err := playClip(n.root, n.player, clip, cueVolume)
		if err != nil && !errors.Is(err, context.Canceled) {
			n.logger.Warn("cue playback failed", zap.Stringer("cue", c), zap.Error(err))
		}
		data := store.AudioEventData{
			Backend: "tone/" + n.player.Name(),
			Kind:    store.AudioCue,
			Text:    c.String(),
			Success: err == nil,
		}
		if err != nil {
			data.ErrorMessage = err.Error()
		}
		n.collector.Audio(data)
	}()
	return nil
}

// Cancel stops the current utterance, if any.
func (n *ClipNarrator) Cancel() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

func (n *ClipNarrator) Events() <-chan audio.SpeechEvent {
	return n.events
}

func (n *ClipNarrator) Backend() string {
	return n.synth.Name()
}

func (n *ClipNarrator) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	n.stop()
	n.wg.Wait()
	close(n.events)
	return nil
}
