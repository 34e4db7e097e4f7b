// Package lesson drives the alphabet walk: which letter is showing, when
// its entry animation ends, when it is narrated, and when it counts as
// learned. All timers go through a clock.Scheduler so the session only ever
// runs on the event loop.
package lesson

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/progress"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

const (
	// SettleDelay is how long a newly opened letter animates before it is
	// narrated.
	SettleDelay = 600 * time.Millisecond

	// EntryWindow is the length of the entry animation.
	EntryWindow = 1200 * time.Millisecond

	// EngagementCueDelay separates a replayed narration from its success cue.
	EngagementCueDelay = 1000 * time.Millisecond
)

// Phase is where the current letter is in its entry sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEntering
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseReady:
		return "ready"
	}
	return "idle"
}

// Speaker is the narration side of audio.Preferences.
type Speaker interface {
	Speak(l catalog.Letter)
	PlayCue(c audio.Cue)
	Cancel()
}

// Options configures a Session.
type Options struct {
	Scheduler clock.Scheduler
	Speaker   Speaker

	// Tracker defaults to a fresh tracker over the catalog.
	Tracker *progress.Tracker

	// Start is the lesson index shown before the first Open.
	Start int

	// Collector receives lesson and game events. Nil records nothing.
	Collector *store.Collector

	// Rand seeds mini-game boards. Nil uses a random source.
	Rand *rand.Rand

	// OnGameComplete is called after a finished game has been recorded and
	// closed.
	OnGameComplete func(kind minigame.Kind)

	Logger *zap.Logger

	// Now is the wall clock for game durations. Nil uses time.Now.
	Now func() time.Time
}

// Session is the single writer of the current lesson index and progress.
type Session struct {
	opts    Options
	tracker *progress.Tracker
	logger  *zap.Logger

	// gen guards narration and cue timers; phaseGen guards the
	// Entering→Ready timer so Animate can restart it alone.
	gen      clock.Generation
	phaseGen clock.Generation

	index   int
	phase   Phase
	engaged bool
	entries int

	game        minigame.Engine
	gameStarted time.Time
}

// New creates a Session showing the first letter in the Idle phase.
func New(opts Options) (*Session, error) {
	if opts.Scheduler == nil {
		return nil, errors.New("lesson: scheduler is required")
	}
	if opts.Speaker == nil {
		return nil, errors.New("lesson: speaker is required")
	}
	if opts.Tracker == nil {
		opts.Tracker = progress.NewTracker(catalog.Size)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !catalog.ValidIndex(opts.Start) {
		return nil, fmt.Errorf("start lesson %d: %w", opts.Start, catalog.ErrOutOfRange)
	}
	return &Session{
		opts:    opts,
		tracker: opts.Tracker,
		logger:  opts.Logger.Named("lesson"),
		index:   opts.Start,
	}, nil
}

// Open shows lesson i: the entry animation starts, narration follows after
// SettleDelay and the letter is ready after EntryWindow. Pending timers and
// narration of the previous letter are cancelled.
func (s *Session) Open(i int) error {
	l, err := catalog.At(i)
	if err != nil {
		return fmt.Errorf("open lesson: %w", err)
	}

	s.leave()
	s.closeGame()
	s.reset()

	s.index = i
	s.enter()
	s.engaged = false

	s.gen.After(s.opts.Scheduler, SettleDelay, func() { s.opts.Speaker.Speak(l) })
	s.scheduleReady()

	s.logger.Debug("lesson opened", zap.String("letter", l.String()), zap.Int("index", i))
	s.opts.Collector.Lesson(store.LessonOpened, l.String(), i)
	return nil
}

// JumpTo opens lesson i from the overview.
func (s *Session) JumpTo(i int) error {
	return s.Open(i)
}

// Next opens the following lesson. At the last letter it does nothing.
func (s *Session) Next() error {
	if s.index >= s.tracker.Size()-1 {
		return nil
	}
	return s.Open(s.index + 1)
}

// Previous opens the preceding lesson. At the first letter it does nothing.
func (s *Session) Previous() error {
	if s.index <= 0 {
		return nil
	}
	return s.Open(s.index - 1)
}

// Replay narrates the current letter again at the learner's request and
// plays the success cue. The lesson counts as learned once the learner
// moves on.
func (s *Session) Replay() {
	l := s.Current()
	s.closeGame()
	s.reset()

	s.enter()
	s.engaged = true
	s.opts.Speaker.Speak(l)
	s.gen.After(s.opts.Scheduler, EngagementCueDelay, func() {
		s.opts.Speaker.PlayCue(audio.CueSuccess)
	})
	s.scheduleReady()

	s.opts.Collector.Lesson(store.LessonReplayed, l.String(), s.index)
}

// Animate replays the entry animation without narration.
func (s *Session) Animate() {
	if s.game != nil {
		return
	}
	s.phaseGen.Next()
	s.enter()
	s.scheduleReady()
}

// MarkCurrentCompleted records the current lesson as learned. It reports
// whether the lesson was newly completed.
func (s *Session) MarkCurrentCompleted() bool {
	if s.tracker.IsCompleted(s.index) {
		return false
	}
	if err := s.tracker.MarkCompleted(s.index); err != nil {
		s.logger.Error("mark completed", zap.Int("index", s.index), zap.Error(err))
		return false
	}
	l := s.Current()
	s.logger.Info("lesson completed",
		zap.String("letter", l.String()), zap.Int("completed", s.tracker.Count()))
	s.opts.Collector.Lesson(store.LessonCompleted, l.String(), s.index)
	return true
}

// OpenGame starts a mini-game for the current letter, cancelling pending
// narration. Any game already open is closed first.
func (s *Session) OpenGame(kind minigame.Kind) (minigame.Engine, error) {
	s.closeGame()
	s.reset()
	s.phase = PhaseReady

	var e minigame.Engine
	e, err := minigame.New(kind, minigame.Config{
		Scheduler:  s.opts.Scheduler,
		Rand:       s.opts.Rand,
		Logger:     s.opts.Logger,
		OnComplete: func() { s.gameCompleted(e) },
	})
	if err != nil {
		return nil, err
	}
	l := s.Current()
	if err := e.Open(l); err != nil {
		return nil, err
	}

	s.game = e
	s.gameStarted = s.opts.Now()
	s.opts.Collector.Game(store.GameOpened, l.String(), kind.String(), 0, 0)
	return e, nil
}

// CloseGame discards the open game, if any.
func (s *Session) CloseGame() {
	s.closeGame()
}

// Close cancels everything pending. The session can be reopened with Open.
func (s *Session) Close() {
	s.leave()
	s.closeGame()
	s.reset()
	s.phase = PhaseIdle
}

// Index returns the current lesson index.
func (s *Session) Index() int { return s.index }

// Current returns the current lesson.
func (s *Session) Current() catalog.Letter {
	l, _ := catalog.At(s.index)
	return l
}

// Phase returns the entry phase of the current lesson.
func (s *Session) Phase() Phase { return s.phase }

// Animating reports whether the entry animation is running.
func (s *Session) Animating() bool { return s.phase == PhaseEntering }

// Entry counts entry animations started so far. A view can compare it with
// a previous value to restart its animation.
func (s *Session) Entry() int { return s.entries }

// Engaged reports whether the learner replayed the current lesson.
func (s *Session) Engaged() bool { return s.engaged }

// Progress returns the session's progress tracker.
func (s *Session) Progress() *progress.Tracker { return s.tracker }

// Game returns the open game, or nil.
func (s *Session) Game() minigame.Engine { return s.game }

func (s *Session) reset() {
	s.gen.Next()
	s.phaseGen.Next()
	s.opts.Speaker.Cancel()
}

func (s *Session) enter() {
	s.phase = PhaseEntering
	s.entries++
}

func (s *Session) scheduleReady() {
	s.phaseGen.After(s.opts.Scheduler, EntryWindow, func() { s.phase = PhaseReady })
}

// leave completes an engaged lesson as the learner moves away from it.
func (s *Session) leave() {
	if s.engaged && s.phase != PhaseIdle {
		s.MarkCurrentCompleted()
	}
	s.engaged = false
}

func (s *Session) closeGame() {
	if s.game == nil {
		return
	}
	kind := s.game.Kind()
	status, _ := s.game.Status()
	s.game.Close()
	s.game = nil
	if status != minigame.StatusCompleted {
		s.opts.Collector.Game(store.GameClosed, s.Current().String(), kind.String(),
			0, s.opts.Now().Sub(s.gameStarted))
	}
}

func (s *Session) gameCompleted(e minigame.Engine) {
	if s.game != e {
		return
	}
	score := 0
	if h, ok := e.(*minigame.Hunt); ok {
		score = h.Score()
	}
	l := s.Current()
	s.opts.Collector.Game(store.GameCompleted, l.String(), e.Kind().String(),
		score, s.opts.Now().Sub(s.gameStarted))

	s.MarkCurrentCompleted()
	s.opts.Speaker.PlayCue(audio.CueSuccess)
	s.closeGame()

	if s.opts.OnGameComplete != nil {
		s.opts.OnGameComplete(e.Kind())
	}
}
