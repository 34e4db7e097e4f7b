package overview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/components"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// Columns is the number of letter tiles per grid row.
const Columns = 7

// OverviewScreen is the letter picker.
type OverviewScreen struct {
	env     *screen.Env
	logger  *zap.Logger
	letters []catalog.Letter
	cursor  int
	width   int
	height  int
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates the picker with the cursor on the current lesson.
func New(env *screen.Env, logger *zap.Logger) *OverviewScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverviewScreen{
		env:     env,
		logger:  logger,
		letters: catalog.All(),
		cursor:  env.Session.Index(),
	}
}

func (o *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (o *OverviewScreen) Title() string {
	return "Choose Your Letter!"
}

func (o *OverviewScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	return keys.Hints(
		key.NewBinding(key.WithKeys("left", "up", "down", "right"), key.WithHelp("←↑↓→", "Move")),
		k.Select, k.Back,
	)
}

// Cursor returns the highlighted lesson index.
func (o *OverviewScreen) Cursor() int {
	return o.cursor
}

func (o *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SizeMsg:
		o.width, o.height = msg.Width, msg.Height

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return o, nil
		}
		if i, ok := o.tileAt(m.X, m.Y); ok {
			o.cursor = i
			return o, o.choose()
		}

	case tea.KeyPressMsg:
		k := keys.Default
		switch {
		case key.Matches(msg, k.Previous):
			o.move(-1)
		case key.Matches(msg, k.Next):
			o.move(1)
		case key.Matches(msg, k.Up):
			o.move(-Columns)
		case key.Matches(msg, k.Down):
			o.move(Columns)
		case key.Matches(msg, k.Select):
			return o, o.choose()
		}
	}
	return o, nil
}

// choose opens the highlighted lesson and returns to it.
func (o *OverviewScreen) choose() tea.Cmd {
	if err := o.env.Session.JumpTo(o.cursor); err != nil {
		o.logger.Error("jump to lesson", zap.Int("index", o.cursor), zap.Error(err))
		return nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (o *OverviewScreen) move(delta int) {
	next := o.cursor + delta
	if catalog.ValidIndex(next) {
		o.cursor = next
	}
}

func (o *OverviewScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, o.content(width))
}

func (o *OverviewScreen) content(width int) string {
	p := o.env.Session.Progress()
	current := o.env.Session.Index()

	var rows []string
	for start := 0; start < len(o.letters); start += Columns {
		end := min(start+Columns, len(o.letters))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, renderTile(o.letters[i], i == o.cursor, i == current, p.IsCompleted(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose Your Letter!")

	bar := components.ProgressBar{
		Label:       fmt.Sprintf("%d of %d learned", p.Count(), p.Size()),
		Ratio:       p.Ratio(),
		Width:       min(width-8, 60),
		Fill:        theme.Star,
		ShowPercent: true,
	}

	return strings.Join([]string{
		heading,
		strings.Join(rows, "\n"),
		bar.View(),
	}, "\n\n")
}

// tileAt maps content coordinates onto a letter index. Every grid line is
// centered on its own, so a short last row starts further right.
func (o *OverviewScreen) tileAt(x, y int) (int, bool) {
	content := o.content(o.width)
	tileW, tileH := lipgloss.Size(renderTile(o.letters[0], false, false, false))

	// The heading and a blank line sit above the grid.
	top := max(o.height-lipgloss.Height(content), 0)/2 + 2
	if y < top {
		return 0, false
	}
	row := (y - top) / tileH
	start := row * Columns
	if start >= len(o.letters) {
		return 0, false
	}
	n := min(Columns, len(o.letters)-start)

	left := 0
	if o.width > lipgloss.Width(content) {
		left = (o.width - n*tileW) / 2
	}
	if x < left {
		return 0, false
	}
	col := (x - left) / tileW
	if col >= n {
		return 0, false
	}
	return start + col, true
}

func renderTile(l catalog.Letter, selected, current, done bool) string {
	border := theme.Border
	if selected {
		border = theme.ArcadeYellow
	}

	mark := " "
	switch {
	case done:
		mark = lipgloss.NewStyle().Foreground(theme.Star).Render("★")
	case current:
		mark = lipgloss.NewStyle().Foreground(theme.Secondary).Render("●")
	}

	letter := lipgloss.NewStyle().
		Foreground(theme.LetterColor(l.Color)).
		Bold(true).
		Render(l.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(letter + " " + mark)
}
