// Package screentest builds screen environments for tests.
package screentest

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/gesture"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/lesson"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
)

// Narrator records requests and accepts them all.
type Narrator struct {
	Spoken []string
	Cues   []audio.Cue
	events chan audio.SpeechEvent
}

func (n *Narrator) Speak(u audio.Utterance) error {
	n.Spoken = append(n.Spoken, u.Text)
	return nil
}

func (n *Narrator) PlayCue(c audio.Cue) error {
	n.Cues = append(n.Cues, c)
	return nil
}

func (n *Narrator) Cancel() {}

func (n *Narrator) Events() <-chan audio.SpeechEvent { return n.events }

// Fixture is an environment driven by a manual clock.
type Fixture struct {
	Env      *screen.Env
	Clock    *clock.Manual
	Narrator *Narrator
	Finished []minigame.Kind
}

// New builds a fixture whose session shows lesson start.
func New(t *testing.T, start int) *Fixture {
	t.Helper()
	f := &Fixture{Clock: clock.NewManual(), Narrator: &Narrator{}}
	prefs := audio.NewPreferences(f.Narrator, nil, audio.Options{MusicEnabled: true})
	sess, err := lesson.New(lesson.Options{
		Scheduler:      f.Clock,
		Speaker:        prefs,
		Start:          start,
		Rand:           rand.New(rand.NewPCG(7, 11)),
		OnGameComplete: func(k minigame.Kind) { f.Finished = append(f.Finished, k) },
	})
	if err != nil {
		t.Fatalf("lesson.New: %v", err)
	}
	f.Env = &screen.Env{
		Session:        sess,
		Audio:          prefs,
		SwipeThreshold: gesture.DefaultThreshold,
		Scale:          gesture.DefaultScale,
	}
	return f
}

// Letter returns the lesson at i.
func Letter(t *testing.T, i int) catalog.Letter {
	t.Helper()
	l, err := catalog.At(i)
	if err != nil {
		t.Fatalf("catalog.At(%d): %v", i, err)
	}
	return l
}

// Key builds a key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special builds a key press for a non-printable key such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Run executes cmd and returns its message, or nil.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
