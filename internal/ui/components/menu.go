package components

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/keys"
)

// buttonHeight is the rendered height of a Button plus its separator line.
const buttonHeight = 4

// MenuItem is one choice in a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of big buttons. Items are chosen with the arrow
// keys and Enter, or directly with their number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Up):
		m.Selected = max(m.Selected-1, 0)
	case key.Matches(kmsg, keys.Default.Down):
		m.Selected = min(m.Selected+1, len(m.Items)-1)
	case key.Matches(kmsg, keys.Default.Select):
		return m, m.activate()
	default:
		if n := int(kmsg.Code - '1'); len(kmsg.Text) == 1 && n >= 0 && n < len(m.Items) {
			m.Selected = n
			return m, m.activate()
		}
	}
	return m, nil
}

// Click activates the item whose button covers row y of the menu view.
func (m Menu) Click(y int) (Menu, tea.Cmd) {
	if y < 0 {
		return m, nil
	}
	i := y / buttonHeight
	if i >= len(m.Items) || y%buttonHeight == buttonHeight-1 {
		return m, nil
	}
	m.Selected = i
	return m, m.activate()
}

func (m Menu) activate() tea.Cmd {
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders the buttons stacked with one blank line between them.
func (m Menu) View(width int, accent color.Color) string {
	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		buttons[i] = Button(item.Label, i == m.Selected, width, accent)
	}
	return strings.Join(buttons, "\n\n")
}
