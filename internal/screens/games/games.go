package games

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/hunt"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/matching"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screens/tracing"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/components"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// GamesScreen lets the learner pick a mini-game for the current letter.
type GamesScreen struct {
	env    *screen.Env
	logger *zap.Logger
	menu   components.Menu
	kinds  []minigame.Kind
	errMsg string
	width  int
	height int
}

var _ screen.Screen = (*GamesScreen)(nil)
var _ screen.KeyHintProvider = (*GamesScreen)(nil)

// New creates the game selector.
func New(env *screen.Env, logger *zap.Logger) *GamesScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GamesScreen{
		env:    env,
		logger: logger,
		kinds:  minigame.Kinds(),
	}
	items := make([]components.MenuItem, len(g.kinds))
	for i, k := range g.kinds {
		items[i] = components.MenuItem{
			Label:  k.Title(),
			Action: func() tea.Cmd { return g.start(k) },
		}
	}
	g.menu = components.NewMenu(items)
	return g
}

func (g *GamesScreen) Init() tea.Cmd {
	return nil
}

func (g *GamesScreen) Title() string {
	return "Games for " + g.env.Session.Current().String()
}

func (g *GamesScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	return keys.Hints(k.Up, k.Down, k.Select, k.Back)
}

func (g *GamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case screen.SizeMsg:
		g.width, g.height = msg.Width, msg.Height
	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button == tea.MouseLeft {
			g.menu, cmd = g.menu.Click(m.Y - g.menuTop())
		}
	default:
		g.menu, cmd = g.menu.Update(msg)
	}
	return g, cmd
}

// menuTop is the content row of the first button: the panel's border and
// padding, then the heading and a blank line.
func (g *GamesScreen) menuTop() int {
	panel := g.panel(g.width)
	return (g.height-lipgloss.Height(panel))/2 + 4
}

// start opens the engine for kind and swaps this screen for the game.
func (g *GamesScreen) start(kind minigame.Kind) tea.Cmd {
	engine, err := g.env.Session.OpenGame(kind)
	if err != nil {
		g.logger.Error("open game", zap.Stringer("kind", kind), zap.Error(err))
		g.errMsg = "That game could not start. Try another one!"
		return nil
	}
	g.errMsg = ""

	var next screen.Screen
	switch e := engine.(type) {
	case *minigame.Tracing:
		next = tracing.New(g.env, e)
	case *minigame.Matching:
		next = matching.New(g.env, e)
	case *minigame.Hunt:
		next = hunt.New(g.env, e)
	default:
		g.env.Session.CloseGame()
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (g *GamesScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, g.panel(width))
}

func (g *GamesScreen) panel(width int) string {
	l := g.env.Session.Current()
	accent := theme.LetterColor(l.Color)
	pw := components.PanelWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render("Play with " + l.String() + "!")

	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(g.kinds[g.menu.Selected].Describe(l))

	sections := []string{heading, g.menu.View(pw-12, accent), desc}
	if g.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(g.errMsg))
	}
	return components.Panel(strings.Join(sections, "\n\n"), pw, accent)
}
