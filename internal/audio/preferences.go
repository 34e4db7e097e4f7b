package audio

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

// State is the process-wide audio state.
type State struct {
	Muted        bool
	MusicEnabled bool
	Speaking     bool
}

// MusicShouldPlay reports whether background music ought to be audible.
func (s State) MusicShouldPlay() bool {
	return s.MusicEnabled && !s.Muted
}

// Options configures Preferences.
type Options struct {
	Muted        bool
	MusicEnabled bool
	Voice        VoiceOptions
	Logger       *zap.Logger

	// OnChange, when set, is called after every change to State.
	OnChange func(State)
}

// Preferences is the single writer of State. It must only be used from the
// event loop.
type Preferences struct {
	state    State
	narrator Narrator
	music    Music
	voice    VoiceOptions
	log      *zap.Logger
	onChange func(State)

	utterance uint64
	ducked    bool
}

// NewPreferences creates Preferences over the given collaborators. A nil
// narrator behaves as if speech were unavailable; a nil music player ignores
// all commands.
func NewPreferences(n Narrator, m Music, opts Options) *Preferences {
	if n == nil {
		n = nopNarrator{}
	}
	if m == nil {
		m = nopMusic{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	voice := opts.Voice
	if voice.Rate == 0 && voice.Pitch == 0 && voice.Volume == 0 {
		voice = DefaultVoice()
	}
	return &Preferences{
		state:    State{Muted: opts.Muted, MusicEnabled: opts.MusicEnabled},
		narrator: n,
		music:    m,
		voice:    voice,
		log:      log.Named("audio"),
		onChange: opts.OnChange,
	}
}

// State returns a snapshot of the current audio state.
func (p *Preferences) State() State {
	return p.state
}

// Start issues the initial music command for the configured state.
func (p *Preferences) Start() {
	p.syncMusic()
}

// ToggleMute flips Muted. Muting cancels any narration in flight.
func (p *Preferences) ToggleMute() State {
	p.state.Muted = !p.state.Muted
	if p.state.Muted {
		p.cancel()
	}
	p.syncMusic()
	p.changed()
	return p.state
}

// ToggleMusic flips MusicEnabled.
func (p *Preferences) ToggleMusic() State {
	p.state.MusicEnabled = !p.state.MusicEnabled
	p.syncMusic()
	p.changed()
	return p.state
}

// Speak narrates the lesson phrase for l, replacing anything in flight.
// Nothing is spoken while muted.
func (p *Preferences) Speak(l catalog.Letter) {
	if p.state.Muted {
		return
	}
	p.cancel()

	p.utterance++
	u := Utterance{ID: p.utterance, Text: l.Narration(), Voice: p.voice}
	if err := p.narrator.Speak(u); err != nil {
		p.logSpeakError(err, u.Text)
		if p.state.Speaking {
			p.state.Speaking = false
			p.changed()
		}
		return
	}

	p.state.Speaking = true
	p.changed()
}

// PlayCue plays a short tone unless muted.
func (p *Preferences) PlayCue(c Cue) {
	if p.state.Muted {
		return
	}
	if err := p.narrator.PlayCue(c); err != nil {
		p.logSpeakError(err, c.String())
	}
}

// Cancel stops narration in flight.
func (p *Preferences) Cancel() {
	if p.cancel() {
		p.changed()
	}
}

// HandleSpeech applies a narrator lifecycle event. Events for superseded
// utterances are ignored.
func (p *Preferences) HandleSpeech(ev SpeechEvent) {
	if ev.ID != p.utterance {
		return
	}

	switch ev.Kind {
	case SpeechStarted:
		if p.state.Muted {
			return
		}
		p.duck(true)
		if !p.state.Speaking {
			p.state.Speaking = true
			p.changed()
		}
	case SpeechEnded, SpeechFailed:
		if ev.Kind == SpeechFailed {
			p.logSpeakError(ev.Err, "")
		}
		p.duck(false)
		if p.state.Speaking {
			p.state.Speaking = false
			p.changed()
		}
	}
}

// cancel reports whether Speaking changed.
func (p *Preferences) cancel() bool {
	p.narrator.Cancel()
	p.duck(false)
	if !p.state.Speaking {
		return false
	}
	p.state.Speaking = false
	return true
}

func (p *Preferences) syncMusic() {
	var err error
	if p.state.MusicShouldPlay() {
		err = p.music.Play()
	} else {
		err = p.music.Pause()
	}
	if err != nil {
		p.log.Warn("background music command failed",
			zap.Bool("play", p.state.MusicShouldPlay()), zap.Error(err))
	}
}

func (p *Preferences) duck(on bool) {
	if p.ducked == on {
		return
	}
	p.ducked = on
	if !p.state.MusicShouldPlay() {
		return
	}
	if err := p.music.Duck(on); err != nil {
		p.log.Debug("music duck failed", zap.Bool("on", on), zap.Error(err))
	}
}

func (p *Preferences) changed() {
	if p.onChange != nil {
		p.onChange(p.state)
	}
}

func (p *Preferences) logSpeakError(err error, what string) {
	if errors.Is(err, ErrNarrationUnavailable) {
		p.log.Debug("narration unavailable", zap.String("text", what), zap.Error(err))
		return
	}
	p.log.Warn("narration failed", zap.String("text", what), zap.Error(err))
}
