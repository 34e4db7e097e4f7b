package lesson

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen/screentest"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/games"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/overview"
)

func newTestLesson(t *testing.T, start int) (*LessonScreen, *screentest.Fixture) {
	t.Helper()
	f := screentest.New(t, start)
	s := New(f.Env, nil)
	s.Init()
	return s, f
}

func TestInitNarratesAfterSettle(t *testing.T) {
	_, f := newTestLesson(t, 0)

	if len(f.Narrator.Spoken) != 0 {
		t.Fatalf("narration should wait for the card to settle, got %v", f.Narrator.Spoken)
	}
	f.Clock.Advance(600 * time.Millisecond)
	if len(f.Narrator.Spoken) != 1 || f.Narrator.Spoken[0] != "A for Apple" {
		t.Errorf("expected \"A for Apple\", got %v", f.Narrator.Spoken)
	}
}

func TestArrowKeysNavigate(t *testing.T) {
	s, f := newTestLesson(t, 0)

	s.Update(screentest.Special(tea.KeyRight))
	s.Update(screentest.Special(tea.KeyRight))
	if got := f.Env.Session.Index(); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}

	s.Update(screentest.Special(tea.KeyLeft))
	if got := f.Env.Session.Index(); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
}

func TestNavigationClampsAtEnds(t *testing.T) {
	s, f := newTestLesson(t, 25)

	s.Update(screentest.Special(tea.KeyRight))
	if got := f.Env.Session.Index(); got != 25 {
		t.Errorf("expected to stay on Z, got %d", got)
	}
}

func drag(s *LessonScreen, fromX, toX, y int) {
	s.Update(tea.MouseClickMsg{X: fromX, Y: y, Button: tea.MouseLeft})
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX + step; x != toX; x += step {
		s.Update(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
	}
	s.Update(tea.MouseReleaseMsg{X: toX, Y: y, Button: tea.MouseLeft})
}

func TestSwipeLeftGoesToNextLetter(t *testing.T) {
	s, f := newTestLesson(t, 3)

	// 10 cells at 8 units per cell is 80 units, past the 50 unit threshold.
	drag(s, 40, 30, 5)

	if got := f.Env.Session.Index(); got != 4 {
		t.Errorf("expected index 4 after swipe left, got %d", got)
	}
}

func TestSwipeRightGoesBack(t *testing.T) {
	s, f := newTestLesson(t, 3)

	drag(s, 30, 40, 5)

	if got := f.Env.Session.Index(); got != 2 {
		t.Errorf("expected index 2 after swipe right, got %d", got)
	}
}

func TestShortDragDoesNothing(t *testing.T) {
	s, f := newTestLesson(t, 3)

	drag(s, 30, 34, 5)

	if got := f.Env.Session.Index(); got != 3 {
		t.Errorf("expected index 3 after short drag, got %d", got)
	}
	if f.Env.Session.Engaged() {
		t.Error("a drag is not a tap")
	}
}

func TestTapReplays(t *testing.T) {
	s, f := newTestLesson(t, 1)
	f.Clock.Advance(2 * time.Second)

	s.Update(tea.MouseClickMsg{X: 10, Y: 10, Button: tea.MouseLeft})
	s.Update(tea.MouseReleaseMsg{X: 10, Y: 10, Button: tea.MouseLeft})

	if !f.Env.Session.Engaged() {
		t.Fatal("tap should replay the lesson")
	}
	if n := len(f.Narrator.Spoken); n != 2 {
		t.Errorf("expected narration twice, got %d", n)
	}
}

func TestReplayThenLeaveCompletesLesson(t *testing.T) {
	s, f := newTestLesson(t, 0)

	s.Update(screentest.Special(tea.KeySpace))
	s.Update(screentest.Special(tea.KeyRight))

	if !f.Env.Session.Progress().IsCompleted(0) {
		t.Error("replayed lesson should be completed once left")
	}
}

func TestMuteToggle(t *testing.T) {
	s, f := newTestLesson(t, 0)

	s.Update(screentest.Key('m'))
	if !f.Env.Audio.State().Muted {
		t.Fatal("expected muted")
	}
	f.Clock.Advance(time.Second)
	if len(f.Narrator.Spoken) != 0 {
		t.Errorf("muted lessons should not speak, got %v", f.Narrator.Spoken)
	}
}

func TestOpensPickerAndGames(t *testing.T) {
	s, _ := newTestLesson(t, 0)

	_, cmd := s.Update(screentest.Key('o'))
	push, ok := screentest.Run(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg for the picker")
	}
	if _, ok := push.Screen.(*overview.OverviewScreen); !ok {
		t.Errorf("expected overview screen, got %T", push.Screen)
	}

	_, cmd = s.Update(screentest.Key('g'))
	push, ok = screentest.Run(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg for games")
	}
	if _, ok := push.Screen.(*games.GamesScreen); !ok {
		t.Errorf("expected games screen, got %T", push.Screen)
	}
}

func TestFramesRestartOnNewEntry(t *testing.T) {
	s, f := newTestLesson(t, 0)

	for i := 0; i < 3; i++ {
		s.Update(screen.FrameMsg{Frame: i})
	}
	if s.frame != 2 {
		t.Fatalf("expected frame 2, got %d", s.frame)
	}

	f.Env.Session.Animate()
	s.Update(screen.FrameMsg{Frame: 3})
	if s.frame != 0 {
		t.Errorf("expected animation restart, got frame %d", s.frame)
	}
}

func TestViewShowsLesson(t *testing.T) {
	s, _ := newTestLesson(t, 0)

	view := s.View(100, 30)
	if !strings.Contains(view, "Apple") {
		t.Error("view should name the word")
	}
	if !strings.Contains(view, "Letter 1 of 26") {
		t.Error("view should show progress")
	}
}

func TestPoseAt(t *testing.T) {
	if p := poseAt(catalog.AnimationBounce, -1); p != (pose{}) {
		t.Errorf("negative frame should rest, got %+v", p)
	}
	if p := poseAt(catalog.AnimationBounce, 0); p.dy != bounceTrack[0] {
		t.Errorf("bounce should start high, got %+v", p)
	}
	if p := poseAt(catalog.AnimationPop, 0); !p.small {
		t.Error("pop should start small")
	}
	if p := poseAt(catalog.AnimationSwing, 100); p != (pose{}) {
		t.Errorf("past the track should rest, got %+v", p)
	}
}
