// Package keys holds the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// Map is the full set of key bindings.
type Map struct {
	Previous key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Replay   key.Binding
	Wiggle   key.Binding
	Mute     key.Binding
	Music    key.Binding
	Letters  key.Binding
	Games    key.Binding
	Reset    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// Default is the application key map.
var Default = Map{
	Previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Choose"),
	),
	Replay: key.NewBinding(
		key.WithKeys("space", "enter", "s"),
		key.WithHelp("Space", "Say it"),
	),
	Wiggle: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "Wiggle"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Mute"),
	),
	Music: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "Music"),
	),
	Letters: key.NewBinding(
		key.WithKeys("o", "tab"),
		key.WithHelp("o", "Letters"),
	),
	Games: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Games"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "New board"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "Quit"),
	),
}

// Hints converts enabled bindings into footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
