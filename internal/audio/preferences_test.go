package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

type fakeNarrator struct {
	spoken   []Utterance
	cues     []Cue
	cancels  int
	speakErr error
}

func (f *fakeNarrator) Speak(u Utterance) error {
	if f.speakErr != nil {
		return f.speakErr
	}
	f.spoken = append(f.spoken, u)
	return nil
}
func (f *fakeNarrator) PlayCue(c Cue) error        { f.cues = append(f.cues, c); return nil }
func (f *fakeNarrator) Cancel()                    { f.cancels++ }
func (f *fakeNarrator) Events() <-chan SpeechEvent { return nil }

type fakeMusic struct {
	commands []string
}

func (f *fakeMusic) Play() error  { f.commands = append(f.commands, "play"); return nil }
func (f *fakeMusic) Pause() error { f.commands = append(f.commands, "pause"); return nil }
func (f *fakeMusic) Duck(on bool) error {
	if on {
		f.commands = append(f.commands, "duck")
	} else {
		f.commands = append(f.commands, "restore")
	}
	return nil
}

func letterA(t *testing.T) catalog.Letter {
	t.Helper()
	l, err := catalog.At(0)
	require.NoError(t, err)
	return l
}

func TestSpeak_SetsSpeakingAndUsesDefaultVoice(t *testing.T) {
	n := &fakeNarrator{}
	p := NewPreferences(n, nil, Options{MusicEnabled: true})

	p.Speak(letterA(t))

	require.Len(t, n.spoken, 1)
	assert.Equal(t, "A for Apple", n.spoken[0].Text)
	assert.Equal(t, DefaultVoice(), n.spoken[0].Voice)
	assert.True(t, p.State().Speaking)
}

func TestToggleMute_CancelsInFlightNarration(t *testing.T) {
	n := &fakeNarrator{}
	p := NewPreferences(n, nil, Options{})
	p.Speak(letterA(t))
	cancelsBefore := n.cancels

	st := p.ToggleMute()

	assert.True(t, st.Muted)
	assert.False(t, st.Speaking)
	assert.Equal(t, cancelsBefore+1, n.cancels)
}

func TestSpeak_SuppressedWhileMuted(t *testing.T) {
	n := &fakeNarrator{}
	p := NewPreferences(n, nil, Options{Muted: true})

	p.Speak(letterA(t))
	p.PlayCue(CueSuccess)

	assert.Empty(t, n.spoken)
	assert.Empty(t, n.cues)
	assert.False(t, p.State().Speaking)
}

func TestSpeak_UnavailableIsNotFatal(t *testing.T) {
	n := &fakeNarrator{speakErr: ErrNarrationUnavailable}
	p := NewPreferences(n, nil, Options{})

	p.Speak(letterA(t))

	assert.False(t, p.State().Speaking)
}

func TestMusicCommandsFollowIntent(t *testing.T) {
	m := &fakeMusic{}
	p := NewPreferences(&fakeNarrator{}, m, Options{MusicEnabled: true})

	p.Start()
	p.ToggleMute()
	p.ToggleMute()
	p.ToggleMusic()

	assert.Equal(t, []string{"play", "pause", "play", "pause"}, m.commands)
}

func TestHandleSpeech_DucksAndRestores(t *testing.T) {
	n := &fakeNarrator{}
	m := &fakeMusic{}
	p := NewPreferences(n, m, Options{MusicEnabled: true})
	p.Speak(letterA(t))
	id := n.spoken[0].ID

	p.HandleSpeech(SpeechEvent{ID: id, Kind: SpeechStarted})
	p.HandleSpeech(SpeechEvent{ID: id, Kind: SpeechEnded})

	assert.Equal(t, []string{"duck", "restore"}, m.commands)
	assert.False(t, p.State().Speaking)
}

func TestHandleSpeech_FailureRestores(t *testing.T) {
	n := &fakeNarrator{}
	m := &fakeMusic{}
	p := NewPreferences(n, m, Options{MusicEnabled: true})
	p.Speak(letterA(t))
	id := n.spoken[0].ID

	p.HandleSpeech(SpeechEvent{ID: id, Kind: SpeechStarted})
	p.HandleSpeech(SpeechEvent{ID: id, Kind: SpeechFailed, Err: errors.New("device busy")})

	assert.Equal(t, []string{"duck", "restore"}, m.commands)
	assert.False(t, p.State().Speaking)
}

func TestHandleSpeech_IgnoresStaleUtterance(t *testing.T) {
	n := &fakeNarrator{}
	p := NewPreferences(n, nil, Options{})
	p.Speak(letterA(t))
	stale := n.spoken[0].ID
	p.Speak(letterA(t))

	p.HandleSpeech(SpeechEvent{ID: stale, Kind: SpeechEnded})

	assert.True(t, p.State().Speaking)
}

func TestOnChangeObservesToggles(t *testing.T) {
	var seen []State
	p := NewPreferences(&fakeNarrator{}, nil, Options{OnChange: func(s State) { seen = append(seen, s) }})

	p.ToggleMusic()
	p.ToggleMute()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].MusicEnabled)
	assert.True(t, seen[1].Muted)
}

func TestParseCue(t *testing.T) {
	for _, c := range []Cue{CueSuccess, CueTryAgain} {
		got, err := ParseCue(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCue("boing")
	assert.Error(t, err)
}
