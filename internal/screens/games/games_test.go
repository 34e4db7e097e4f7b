package games

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen/screentest"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/hunt"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/matching"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/tracing"
)

func choose(t *testing.T, downs int) (screen.Screen, *screentest.Fixture) {
	t.Helper()
	f := screentest.New(t, 1)
	g := New(f.Env, nil)
	for i := 0; i < downs; i++ {
		g.Update(screentest.Special(tea.KeyDown))
	}
	_, cmd := g.Update(screentest.Special(tea.KeyEnter))
	msg, ok := screentest.Run(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", screentest.Run(cmd))
	}
	return msg.Screen, f
}

func TestStartsEachGame(t *testing.T) {
	s, f := choose(t, 0)
	if _, ok := s.(*tracing.TracingScreen); !ok {
		t.Errorf("expected tracing screen, got %T", s)
	}
	if k := f.Env.Session.Game().Kind(); k != minigame.KindTracing {
		t.Errorf("expected tracing engine, got %v", k)
	}

	s, _ = choose(t, 1)
	if _, ok := s.(*matching.MatchingScreen); !ok {
		t.Errorf("expected matching screen, got %T", s)
	}

	s, _ = choose(t, 2)
	if _, ok := s.(*hunt.HuntScreen); !ok {
		t.Errorf("expected hunt screen, got %T", s)
	}
}

func TestGameTargetsCurrentLetter(t *testing.T) {
	_, f := choose(t, 2)
	target, err := f.Env.Session.Game().Target()
	if err != nil {
		t.Fatal(err)
	}
	if target.Char != 'B' {
		t.Errorf("expected target B, got %c", target.Char)
	}
}

func TestTitleNamesLetter(t *testing.T) {
	f := screentest.New(t, 2)
	if got := New(f.Env, nil).Title(); got != "Games for C" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestNumberKeyStartsGame(t *testing.T) {
	f := screentest.New(t, 0)
	g := New(f.Env, nil)
	_, cmd := g.Update(screentest.Key('3'))
	msg, ok := screentest.Run(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", screentest.Run(cmd))
	}
	if _, ok := msg.Screen.(*hunt.HuntScreen); !ok {
		t.Errorf("expected hunt screen, got %T", msg.Screen)
	}
}

func TestClickStartsGame(t *testing.T) {
	f := screentest.New(t, 0)
	g := New(f.Env, nil)
	g.Update(screen.SizeMsg{Width: 80, Height: 24})

	// The blank row between buttons does nothing.
	_, cmd := g.Update(tea.MouseClickMsg{X: 40, Y: g.menuTop() + 3, Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatalf("expected no command for the gap, got %T", screentest.Run(cmd))
	}

	_, cmd = g.Update(tea.MouseClickMsg{X: 40, Y: g.menuTop() + 5, Button: tea.MouseLeft})
	msg, ok := screentest.Run(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", screentest.Run(cmd))
	}
	if _, ok := msg.Screen.(*matching.MatchingScreen); !ok {
		t.Errorf("expected matching screen, got %T", msg.Screen)
	}
}
