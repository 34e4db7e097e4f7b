package tracing

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/glyph"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// Each font cell of the guide glyph covers cellW x cellH canvas cells.
const (
	cellW = 4
	cellH = 2

	canvasW = glyph.Cols * cellW
	canvasH = glyph.Rows * cellH

	// canvasTop is the content row of the canvas' first inner row: the
	// instruction line, a blank line and the top border come first.
	canvasTop = 3
)

// TracingScreen lets the learner draw over the letter with the mouse.
type TracingScreen struct {
	env    *screen.Env
	engine *minigame.Tracing
	width  int
	height int
}

var _ screen.Screen = (*TracingScreen)(nil)
var _ screen.KeyHintProvider = (*TracingScreen)(nil)
var _ screen.Closer = (*TracingScreen)(nil)

// New creates the tracing screen over an opened engine.
func New(env *screen.Env, engine *minigame.Tracing) *TracingScreen {
	return &TracingScreen{env: env, engine: engine}
}

func (t *TracingScreen) Init() tea.Cmd {
	return nil
}

func (t *TracingScreen) Title() string {
	return minigame.KindTracing.Title()
}

func (t *TracingScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	tryAgain := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Try again"))
	return keys.Hints(tryAgain, k.Back)
}

// Close discards the game when the screen is left early.
func (t *TracingScreen) Close() {
	if t.active() {
		t.env.Session.CloseGame()
	}
}

// active reports whether the session still runs this screen's engine.
func (t *TracingScreen) active() bool {
	return t.env.Session.Game() == minigame.Engine(t.engine)
}

func (t *TracingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SizeMsg:
		t.width, t.height = msg.Width, msg.Height
		return t, nil
	}
	if !t.active() {
		return t, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Default.Reset) {
			_ = t.engine.Reset()
		}

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return t, nil
		}
		if p, ok := t.toCanvas(m.X, m.Y); ok {
			_ = t.engine.Begin(p)
		}

	case tea.MouseMotionMsg:
		if !t.engine.Drawing() {
			return t, nil
		}
		m := msg.Mouse()
		if p, ok := t.toCanvas(m.X, m.Y); ok {
			_, _ = t.engine.Extend(p)
		}

	case tea.MouseReleaseMsg:
		_ = t.engine.End()
	}
	return t, nil
}

// origin returns the content column and row of the canvas' top-left inner
// cell.
func (t *TracingScreen) origin() (int, int) {
	return (t.width-(canvasW+2))/2 + 1, canvasTop
}

// toCanvas maps content coordinates onto the canvas.
func (t *TracingScreen) toCanvas(x, y int) (minigame.Point, bool) {
	ox, oy := t.origin()
	cx, cy := x-ox, y-oy
	if cx < 0 || cx >= canvasW || cy < 0 || cy >= canvasH {
		return minigame.Point{}, false
	}
	return minigame.Point{X: float64(cx), Y: float64(cy)}, true
}
