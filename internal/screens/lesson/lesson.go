package lesson

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/gesture"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/games"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/overview"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// LessonScreen shows the current letter card. Arrow keys and horizontal
// mouse drags move between letters.
type LessonScreen struct {
	env    *screen.Env
	swipe  *gesture.Router
	logger *zap.Logger

	// entry and frame drive the entry animation.
	entry int
	frame int

	// pressX/pressY is where the current drag started, in cells.
	pressX, pressY int
	swiping        bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the lesson screen over a shared environment.
func New(env *screen.Env, logger *zap.Logger) *LessonScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := env.SwipeThreshold
	if threshold <= 0 {
		threshold = gesture.DefaultThreshold
	}
	return &LessonScreen{
		env:    env,
		swipe:  gesture.NewRouter(threshold),
		logger: logger.Named("lesson-screen"),
		entry:  -1,
	}
}

// Init opens the current lesson so its entry animation and narration start.
func (s *LessonScreen) Init() tea.Cmd {
	if err := s.env.Session.Open(s.env.Session.Index()); err != nil {
		s.logger.Error("open lesson", zap.Error(err))
	}
	return nil
}

func (s *LessonScreen) Title() string {
	l := s.env.Session.Current()
	return "Letter " + l.String()
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	return keys.Hints(k.Previous, k.Next, k.Replay, k.Letters, k.Games, k.Mute, k.Quit)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.FrameMsg:
		s.advanceFrame()
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return s, nil
		}
		s.pressX, s.pressY = m.X, m.Y
		s.swiping = false
		x, y := s.env.Scale.Units(m.X, m.Y)
		s.swipe.Start(x, y)
		return s, nil

	case tea.MouseMotionMsg:
		if !s.swipe.Active() {
			return s, nil
		}
		m := msg.Mouse()
		x, y := s.env.Scale.Units(m.X, m.Y)
		if s.swipe.Move(x, y) {
			s.swiping = true
		}
		return s, nil

	case tea.MouseReleaseMsg:
		return s.handleRelease(msg.Mouse())
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	sess := s.env.Session
	k := keys.Default
	switch {
	case key.Matches(msg, k.Next):
		s.navigate(gesture.IntentNext)
	case key.Matches(msg, k.Previous):
		s.navigate(gesture.IntentPrevious)
	case key.Matches(msg, k.Replay):
		sess.Replay()
	case key.Matches(msg, k.Wiggle):
		sess.Animate()
	case key.Matches(msg, k.Mute):
		s.env.Audio.ToggleMute()
	case key.Matches(msg, k.Music):
		s.env.Audio.ToggleMusic()
	case key.Matches(msg, k.Letters):
		return s, push(overview.New(s.env, s.logger))
	case key.Matches(msg, k.Games):
		return s, push(games.New(s.env, s.logger))
	}
	return s, nil
}

func (s *LessonScreen) handleRelease(m tea.Mouse) (screen.Screen, tea.Cmd) {
	if !s.swipe.Active() {
		return s, nil
	}
	x, y := s.env.Scale.Units(m.X, m.Y)
	intent := s.swipe.End(x, y)
	s.swiping = false
	if intent != gesture.IntentNone {
		s.navigate(intent)
		return s, nil
	}
	// A tap without movement says the letter again.
	if m.X == s.pressX && m.Y == s.pressY {
		s.env.Session.Replay()
	}
	return s, nil
}

func (s *LessonScreen) navigate(intent gesture.Intent) {
	var err error
	switch intent {
	case gesture.IntentNext:
		err = s.env.Session.Next()
	case gesture.IntentPrevious:
		err = s.env.Session.Previous()
	}
	if err != nil {
		s.logger.Error("navigate", zap.Stringer("intent", intent), zap.Error(err))
	}
}

// advanceFrame restarts the animation when the session began a new entry.
func (s *LessonScreen) advanceFrame() {
	if e := s.env.Session.Entry(); e != s.entry {
		s.entry = e
		s.frame = 0
		return
	}
	s.frame++
}

func push(next screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}
