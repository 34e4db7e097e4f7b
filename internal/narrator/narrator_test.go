package narrator

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
)

// ignoreCensus skips the stats worker that go.opencensus.io starts from
// init when the genai client is linked in.
var ignoreCensus = goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start")

// fakePlayer records plays. When hold is set, PlayFile blocks until ctx is
// done or release is closed.
type fakePlayer struct {
	mu      sync.Mutex
	volumes []float64
	sizes   []int64
	hold    bool
	release chan struct{}
	err     error
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{release: make(chan struct{})}
}

func (p *fakePlayer) PlayFile(ctx context.Context, path string, volume float64) error {
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}
	p.mu.Lock()
	p.volumes = append(p.volumes, volume)
	p.sizes = append(p.sizes, size)
	hold, err := p.hold, p.err
	p.mu.Unlock()

	if hold {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.release:
		}
	}
	return err
}

func (p *fakePlayer) Name() string { return "fake" }

func (p *fakePlayer) plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.volumes)
}

func nextEvent(t *testing.T, ch <-chan audio.SpeechEvent) audio.SpeechEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for speech event")
		return audio.SpeechEvent{}
	}
}

func utterance(id uint64) audio.Utterance {
	return audio.Utterance{ID: id, Text: "A for Apple", Voice: audio.DefaultVoice()}
}

func TestClipNarrator_SpeakLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	n := NewClipNarrator(NewMockSynth(), player, Options{})
	defer n.Close()

	require.NoError(t, n.Speak(utterance(1)))
	ev := nextEvent(t, n.Events())
	assert.Equal(t, audio.SpeechEvent{ID: 1, Kind: audio.SpeechStarted}, ev)
	ev = nextEvent(t, n.Events())
	assert.Equal(t, audio.SpeechEvent{ID: 1, Kind: audio.SpeechEnded}, ev)

	require.Equal(t, 1, player.plays())
	assert.InDelta(t, 0.9, player.volumes[0], 1e-9)
	assert.Positive(t, player.sizes[0])
	assert.Equal(t, BackendMock, n.Backend())
}

func TestClipNarrator_SynthesisFailure(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	mock := NewMockSynth(MockResponse{Err: errors.New("no voice")})
	n := NewClipNarrator(mock, newFakePlayer(), Options{})
	defer n.Close()

	require.NoError(t, n.Speak(utterance(7)))
	ev := nextEvent(t, n.Events())
	assert.Equal(t, uint64(7), ev.ID)
	assert.Equal(t, audio.SpeechFailed, ev.Kind)
	assert.ErrorIs(t, ev.Err, audio.ErrNarrationUnavailable)
}

func TestClipNarrator_PlaybackFailure(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	player.err = errors.New("device busy")
	n := NewClipNarrator(NewMockSynth(), player, Options{})
	defer n.Close()

	require.NoError(t, n.Speak(utterance(2)))
	assert.Equal(t, audio.SpeechStarted, nextEvent(t, n.Events()).Kind)
	ev := nextEvent(t, n.Events())
	assert.Equal(t, audio.SpeechFailed, ev.Kind)
	assert.Error(t, ev.Err)
}

func TestClipNarrator_CancelEndsUtterance(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	player.hold = true
	n := NewClipNarrator(NewMockSynth(), player, Options{})
	defer n.Close()

	require.NoError(t, n.Speak(utterance(3)))
	assert.Equal(t, audio.SpeechStarted, nextEvent(t, n.Events()).Kind)

	n.Cancel()
	assert.Equal(t, audio.SpeechEvent{ID: 3, Kind: audio.SpeechEnded}, nextEvent(t, n.Events()))
}

func TestClipNarrator_SpeakInterruptsPrevious(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	player.hold = true
	n := NewClipNarrator(NewMockSynth(), player, Options{})
	defer n.Close()

	require.NoError(t, n.Speak(utterance(1)))
	assert.Equal(t, audio.SpeechEvent{ID: 1, Kind: audio.SpeechStarted}, nextEvent(t, n.Events()))

	require.NoError(t, n.Speak(utterance(2)))
	seen := map[uint64][]audio.SpeechEventKind{}
	for i := 0; i < 2; i++ {
		ev := nextEvent(t, n.Events())
		seen[ev.ID] = append(seen[ev.ID], ev.Kind)
	}
	assert.Equal(t, []audio.SpeechEventKind{audio.SpeechEnded}, seen[1])
	assert.Equal(t, []audio.SpeechEventKind{audio.SpeechStarted}, seen[2])

	close(player.release)
	assert.Equal(t, audio.SpeechEvent{ID: 2, Kind: audio.SpeechEnded}, nextEvent(t, n.Events()))
}

func TestClipNarrator_PlayCue(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	n := NewClipNarrator(NewMockSynth(), player, Options{})

	require.NoError(t, n.PlayCue(audio.CueSuccess))
	require.NoError(t, n.Close())

	require.Equal(t, 1, player.plays())
	assert.Equal(t, cueVolume, player.volumes[0])
}

func TestClipNarrator_Close(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	player.hold = true
	n := NewClipNarrator(NewMockSynth(), player, Options{})

	require.NoError(t, n.Speak(utterance(1)))
	require.NoError(t, n.Close())
	require.NoError(t, n.Close())

	// Events is closed after any pending events drain.
	for range n.Events() {
	}

	assert.ErrorIs(t, n.Speak(utterance(2)), audio.ErrNarrationUnavailable)
	assert.ErrorIs(t, n.PlayCue(audio.CueSuccess), audio.ErrNarrationUnavailable)
}

func TestSilent(t *testing.T) {
	s := NewSilent("no audio player")
	assert.ErrorIs(t, s.Speak(utterance(1)), audio.ErrNarrationUnavailable)
	assert.ErrorIs(t, s.PlayCue(audio.CueSuccess), audio.ErrNarrationUnavailable)
	assert.Equal(t, "silent (no audio player)", s.Backend())
	assert.Equal(t, "silent", NewSilent("").Backend())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, ok := <-s.Events()
	assert.False(t, ok)
}

func TestMusicPlayer(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreCensus)

	player := newFakePlayer()
	player.hold = true
	m := NewMusicPlayer(player, "/music.mp3", 0.3, 0.1, nil)

	require.NoError(t, m.Play())
	require.Eventually(t, func() bool { return player.plays() == 1 }, time.Second, time.Millisecond)
	assert.True(t, m.Playing())

	require.NoError(t, m.Duck(true))
	require.Eventually(t, func() bool { return player.plays() == 2 }, time.Second, time.Millisecond)
	assert.True(t, m.Ducked())

	// Ducking again is a no-op.
	require.NoError(t, m.Duck(true))

	require.NoError(t, m.Pause())
	assert.False(t, m.Playing())
	require.NoError(t, m.Close())

	player.mu.Lock()
	defer player.mu.Unlock()
	assert.Equal(t, []float64{0.3, 0.1}, player.volumes)
}

func TestMusicPlayerWithoutFile(t *testing.T) {
	player := newFakePlayer()
	m := NewMusicPlayer(player, "", 0.3, 0.1, nil)
	require.NoError(t, m.Play())
	require.NoError(t, m.Duck(true))
	require.NoError(t, m.Close())
	assert.Zero(t, player.plays())
}
