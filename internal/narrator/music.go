package narrator

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
)

// MusicPlayer loops a music file through a Player. Ducking restarts the loop
// at the lower volume, since the player commands can't change volume while
// running.
type MusicPlayer struct {
	player Player
	file   string
	volume float64
	low    float64
	logger *zap.Logger

	mu      sync.Mutex
	playing bool
	ducked  bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

var _ audio.Music = (*MusicPlayer)(nil)

// NewMusicPlayer creates a music player. With no player or no file it accepts
// every command and plays nothing.
func NewMusicPlayer(player Player, file string, volume, ducked float64, logger *zap.Logger) *MusicPlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MusicPlayer{
		player: player,
		file:   file,
		volume: volume,
		low:    ducked,
		logger: logger.Named("music"),
	}
}

func (m *MusicPlayer) enabled() bool {
	return m.player != nil && m.file != ""
}

func (m *MusicPlayer) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playing {
		return nil
	}
	m.playing = true
	m.restart()
	return nil
}

func (m *MusicPlayer) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.halt()
	return nil
}

func (m *MusicPlayer) Duck(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ducked == on {
		return nil
	}
	m.ducked = on
	if m.playing {
		m.restart()
	}
	return nil
}

// Playing reports whether music was asked to play.
func (m *MusicPlayer) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// Ducked reports whether music is lowered for narration.
func (m *MusicPlayer) Ducked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ducked
}

// Close stops playback and waits for the player to exit.
func (m *MusicPlayer) Close() error {
	m.mu.Lock()
	m.playing = false
	m.halt()
	m.mu.Unlock()
	m.wg.Wait()
	return nil
}

// restart must be called with mu held.
func (m *MusicPlayer) restart() {
	m.halt()
	if !m.enabled() {
		return
	}
	vol := m.volume
	if m.ducked {
		vol = m.low
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for ctx.Err() == nil {
			if err := m.player.PlayFile(ctx, m.file, vol); err != nil {
				if ctx.Err() == nil {
					m.logger.Warn("music stopped", zap.String("file", m.file), zap.Error(err))
				}
				return
			}
		}
	}()
}

// halt must be called with mu held.
func (m *MusicPlayer) halt() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
