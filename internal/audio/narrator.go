// Package audio owns the process-wide audio intent (mute, background music,
// speaking) and the boundary to the speech and music collaborators.
package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNarrationUnavailable is reported when no speech backend can speak.
// It is never fatal: lessons continue without sound.
var ErrNarrationUnavailable = errors.New("narration unavailable")

// Cue is a short non-speech tone.
type Cue int

const (
	CueSuccess Cue = iota
	CueTryAgain
)

func (c Cue) String() string {
	switch c {
	case CueSuccess:
		return "success"
	case CueTryAgain:
		return "try-again"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// ParseCue converts a cue name back to a Cue.
func ParseCue(s string) (Cue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return CueSuccess, nil
	case "try-again", "tryagain":
		return CueTryAgain, nil
	}
	return 0, fmt.Errorf("unknown cue %q", s)
}

// VoiceOptions tunes speech for young listeners.
type VoiceOptions struct {
	Rate   float64
	Pitch  float64
	Volume float64

	// Preference lists substrings matched against voice names, in order.
	// The first installed voice containing one of them is used.
	Preference []string
}

// DefaultVoice returns the slow, bright voice settings used for lessons.
func DefaultVoice() VoiceOptions {
	return VoiceOptions{
		Rate:       0.7,
		Pitch:      1.3,
		Volume:     0.9,
		Preference: []string{"child", "kid", "female"},
	}
}

// Utterance is one request to speak.
type Utterance struct {
	// ID identifies the request in the SpeechEvents it produces.
	ID    uint64
	Text  string
	Voice VoiceOptions
}

// SpeechEventKind enumerates narrator lifecycle signals.
type SpeechEventKind int

const (
	SpeechStarted SpeechEventKind = iota
	SpeechEnded
	SpeechFailed
)

func (k SpeechEventKind) String() string {
	switch k {
	case SpeechStarted:
		return "started"
	case SpeechEnded:
		return "ended"
	case SpeechFailed:
		return "failed"
	}
	return fmt.Sprintf("speech(%d)", int(k))
}

// SpeechEvent reports progress of an Utterance.
type SpeechEvent struct {
	ID   uint64
	Kind SpeechEventKind
	Err  error
}

// Narrator turns text into audible speech.
//
// Speak and PlayCue must not block on playback. Lifecycle events for an
// utterance are delivered on Events, possibly from another goroutine; the
// owner is responsible for handing them to Preferences.HandleSpeech on its
// event loop. Cancel stops whatever is playing; a cancelled utterance may or
// may not report SpeechEnded.
type Narrator interface {
	Speak(u Utterance) error
	PlayCue(c Cue) error
	Cancel()
	Events() <-chan SpeechEvent
}

// Music is the background music collaborator. Preferences only issues
// commands; how they are carried out is up to the implementation.
type Music interface {
	Play() error
	Pause() error

	// Duck lowers the volume while narration is speaking and restores it
	// when called with false.
	Duck(on bool) error
}

type nopNarrator struct{}

func (nopNarrator) Speak(Utterance) error      { return ErrNarrationUnavailable }
func (nopNarrator) PlayCue(Cue) error          { return ErrNarrationUnavailable }
func (nopNarrator) Cancel()                    {}
func (nopNarrator) Events() <-chan SpeechEvent { return nil }

type nopMusic struct{}

func (nopMusic) Play() error     { return nil }
func (nopMusic) Pause() error    { return nil }
func (nopMusic) Duck(bool) error { return nil }
