package narrator

import (
	"sync"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
)

// Silent is the narrator used when no speech backend is available. Every
// request reports audio.ErrNarrationUnavailable and no events are emitted.
type Silent struct {
	reason string
	events chan audio.SpeechEvent
	once   sync.Once
}

var _ Narrator = (*Silent)(nil)

// NewSilent returns a Silent narrator. reason is shown as its backend name.
func NewSilent(reason string) *Silent {
	return &Silent{reason: reason, events: make(chan audio.SpeechEvent)}
}

func (s *Silent) Speak(audio.Utterance) error { return audio.ErrNarrationUnavailable }
func (s *Silent) PlayCue(audio.Cue) error     { return audio.ErrNarrationUnavailable }
func (s *Silent) Cancel()                     {}

func (s *Silent) Events() <-chan audio.SpeechEvent { return s.events }

func (s *Silent) Backend() string {
	if s.reason == "" {
		return BackendSilent
	}
	return BackendSilent + " (" + s.reason + ")"
}

func (s *Silent) Close() error {
	s.once.Do(func() { close(s.events) })
	return nil
}
