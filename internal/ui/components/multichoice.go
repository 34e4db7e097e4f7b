package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// Mark is the feedback shown on a choice after it was picked.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

// ChoiceMsg reports the index the user picked.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a row of large choice tiles navigated with the arrow keys
// or picked directly with the number keys.
type MultiChoice struct {
	Options  []string
	Selected int
	Marks    []Mark
	Locked   bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Marks:   make([]Mark, len(options)),
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Picking a tile emits a ChoiceMsg.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Previous, keys.Default.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, keys.Default.Next, keys.Default.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, keys.Default.Select):
		return m, choose(m.Selected)
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			return m, choose(m.Selected)
		}
	}

	return m, nil
}

func choose(i int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: i} }
}

// Mark sets the feedback shown on option i.
func (m *MultiChoice) Mark(i int, mark Mark) {
	if i >= 0 && i < len(m.Marks) {
		m.Marks[i] = mark
	}
}

// ClearMarks removes all feedback.
func (m *MultiChoice) ClearMarks() {
	for i := range m.Marks {
		m.Marks[i] = MarkNone
	}
}

// View renders the options as a horizontal row of tiles.
func (m MultiChoice) View() string {
	tiles := make([]string, len(m.Options))
	for i, opt := range m.Options {
		border := theme.Border
		fg := theme.Text
		switch {
		case m.Marks[i] == MarkCorrect:
			border, fg = theme.Success, theme.Success
		case m.Marks[i] == MarkIncorrect:
			border, fg = theme.Error, theme.Error
		case i == m.Selected && !m.Locked:
			border, fg = theme.ArcadeYellow, theme.ArcadeYellow
		}
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strconv.Itoa(i + 1))
		tile := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(fg).
			Bold(true).
			Padding(1, 3).
			Render(opt)
		tiles[i] = lipgloss.JoinVertical(lipgloss.Center, tile, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced(tiles)...)
}

func spaced(tiles []string) []string {
	out := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			out = append(out, strings.Repeat(" ", 2))
		}
		out = append(out, t)
	}
	return out
}
