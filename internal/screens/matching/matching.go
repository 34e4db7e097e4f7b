package matching

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/components"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/glyph"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// MatchingScreen asks which picture starts with the current letter.
type MatchingScreen struct {
	env     *screen.Env
	engine  *minigame.Matching
	options []minigame.Option
	choices components.MultiChoice
}

var _ screen.Screen = (*MatchingScreen)(nil)
var _ screen.KeyHintProvider = (*MatchingScreen)(nil)
var _ screen.Closer = (*MatchingScreen)(nil)

// New creates the matching screen over an opened engine.
func New(env *screen.Env, engine *minigame.Matching) *MatchingScreen {
	m := &MatchingScreen{env: env, engine: engine}
	m.deal()
	return m
}

func (m *MatchingScreen) Init() tea.Cmd {
	return nil
}

func (m *MatchingScreen) Title() string {
	return minigame.KindMatching.Title()
}

func (m *MatchingScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	pick := key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Pick"))
	return keys.Hints(k.Previous, k.Next, k.Select, pick, k.Reset, k.Back)
}

// Close discards the game when the screen is left early.
func (m *MatchingScreen) Close() {
	if m.env.Session.Game() == minigame.Engine(m.engine) {
		m.env.Session.CloseGame()
	}
}

func (m *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	m.sync()

	switch msg := msg.(type) {
	case components.ChoiceMsg:
		m.choose(msg.Index)
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Default.Reset) {
			if err := m.engine.Regenerate(); err == nil {
				m.deal()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.choices, cmd = m.choices.Update(msg)
	return m, cmd
}

// deal reloads the options after the engine dealt a board.
func (m *MatchingScreen) deal() {
	m.options, _ = m.engine.Options()
	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = glyph.Picture(o.Letter.Word) + "\n" + o.Letter.Word
	}
	m.choices = components.NewMultiChoice(labels)
}

func (m *MatchingScreen) choose(i int) {
	if i < 0 || i >= len(m.options) {
		return
	}
	fb, err := m.engine.Select(m.options[i].ID)
	if err != nil {
		return
	}
	if fb == minigame.FeedbackIncorrect {
		m.env.Audio.PlayCue(audio.CueTryAgain)
	}
	m.sync()
}

// sync copies the engine's feedback onto the tiles.
func (m *MatchingScreen) sync() {
	status, _ := m.engine.Status()
	fb := m.engine.Feedback()
	m.choices.Locked = fb != minigame.FeedbackNone || status == minigame.StatusCompleted
	m.choices.ClearMarks()
	for i, o := range m.options {
		if o.ID != m.engine.Selected() {
			continue
		}
		switch fb {
		case minigame.FeedbackCorrect:
			m.choices.Mark(i, components.MarkCorrect)
		case minigame.FeedbackIncorrect:
			m.choices.Mark(i, components.MarkIncorrect)
		}
	}
}

func (m *MatchingScreen) View(width, height int) string {
	m.sync()
	l := m.env.Session.Current()

	target := theme.LetterCard(l.Color).Padding(0, 2).Render(l.String())
	prompt := lipgloss.NewStyle().Foreground(theme.Text).
		Render(minigame.KindMatching.Describe(l))

	var message string
	status, _ := m.engine.Status()
	switch {
	case status == minigame.StatusCompleted:
		message = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("★ You found it! " + l.Narration() + " ★")
	case m.engine.Feedback() == minigame.FeedbackCorrect:
		message = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Yes!")
	case m.engine.Feedback() == minigame.FeedbackIncorrect:
		message = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Oops! Try again!")
	default:
		message = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Which one starts with " + l.String() + "?")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		target, "", prompt, "", m.choices.View(), "", message)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
