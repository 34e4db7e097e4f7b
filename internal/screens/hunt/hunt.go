package hunt

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// Grid geometry in terminal cells.
const (
	columns = 4
	tileW   = 7
	tileH   = 3
	gap     = 1

	gridW = columns*tileW + (columns-1)*gap

	// gridTop is the content row of the first tile: prompt, score and a
	// blank line come first.
	gridTop = 3
)

// HuntScreen is the find-the-letter grid.
type HuntScreen struct {
	env    *screen.Env
	engine *minigame.Hunt
	cursor int
	missed int // cell id of the last miss, or -1
	width  int
}

var _ screen.Screen = (*HuntScreen)(nil)
var _ screen.KeyHintProvider = (*HuntScreen)(nil)
var _ screen.Closer = (*HuntScreen)(nil)

// New creates the hunt screen over an opened engine.
func New(env *screen.Env, engine *minigame.Hunt) *HuntScreen {
	return &HuntScreen{env: env, engine: engine, missed: -1}
}

func (h *HuntScreen) Init() tea.Cmd {
	return nil
}

func (h *HuntScreen) Title() string {
	return minigame.KindLetterHunt.Title()
}

func (h *HuntScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	move := key.NewBinding(key.WithKeys("left", "up", "down", "right"), key.WithHelp("←↑↓→", "Move"))
	return keys.Hints(move, k.Select, k.Reset, k.Back)
}

// Close discards the game when the screen is left early.
func (h *HuntScreen) Close() {
	if h.env.Session.Game() == minigame.Engine(h.engine) {
		h.env.Session.CloseGame()
	}
}

// Cursor returns the highlighted cell id.
func (h *HuntScreen) Cursor() int {
	return h.cursor
}

func (h *HuntScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SizeMsg:
		h.width = msg.Width

	case tea.KeyPressMsg:
		k := keys.Default
		switch {
		case key.Matches(msg, k.Previous):
			h.move(-1)
		case key.Matches(msg, k.Next):
			h.move(1)
		case key.Matches(msg, k.Up):
			h.move(-columns)
		case key.Matches(msg, k.Down):
			h.move(columns)
		case key.Matches(msg, k.Select):
			h.guess(h.cursor)
		case key.Matches(msg, k.Reset):
			if err := h.engine.Regenerate(); err == nil {
				h.missed = -1
			}
		}

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return h, nil
		}
		if id, ok := h.cellAt(m.X, m.Y); ok {
			h.cursor = id
			h.guess(id)
		}
	}
	return h, nil
}

func (h *HuntScreen) move(delta int) {
	next := h.cursor + delta
	if next >= 0 && next < minigame.HuntGridSize {
		h.cursor = next
	}
}

func (h *HuntScreen) guess(id int) {
	res, err := h.engine.Guess(id)
	if err != nil {
		return
	}
	switch res {
	case minigame.GuessMiss:
		h.missed = id
		h.env.Audio.PlayCue(audio.CueTryAgain)
	case minigame.GuessHit:
		h.missed = -1
	}
}

// cellAt maps content coordinates to a cell id. Clicks in the gaps between
// tiles miss.
func (h *HuntScreen) cellAt(x, y int) (int, bool) {
	left := (h.width - gridW) / 2
	cx, cy := x-left, y-gridTop
	if cx < 0 || cy < 0 || cx >= gridW {
		return 0, false
	}
	col, offX := cx/(tileW+gap), cx%(tileW+gap)
	row := cy / tileH
	if offX >= tileW || row >= minigame.HuntGridSize/columns {
		return 0, false
	}
	return row*columns + col, true
}
