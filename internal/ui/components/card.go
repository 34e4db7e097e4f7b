package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// PanelWidth returns the inner width for a centered panel in a frame of
// frameWidth columns.
func PanelWidth(frameWidth int) int {
	return max(20, min(frameWidth-6, 56))
}

// Panel wraps content in a rounded card whose border takes the accent color.
func Panel(content string, width int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(width-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders one menu entry. The selected entry is filled with accent.
func Button(label string, selected bool, width int, accent color.Color) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(accent).
			BorderForeground(accent).
			Render("▸ " + label + " ◂")
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
