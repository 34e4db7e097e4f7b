package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

// ProgressBar is a labelled bar of filled and empty blocks.
type ProgressBar struct {
	Label string
	// Ratio is clamped to [0,1].
	Ratio float64
	Width int
	// Fill colors the filled part. Nil uses theme.Secondary.
	Fill        color.Color
	ShowPercent bool
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percent := ""
	if p.ShowPercent {
		percent = fmt.Sprintf(" %3d%%", int(p.ratio()*100))
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-len(percent), 4)
	filled := int(float64(barWidth) * p.ratio())

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))
	if percent != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(percent))
	}
	return b.String()
}

func (p ProgressBar) ratio() float64 {
	return max(0, min(p.Ratio, 1))
}

// StarRow renders one star per lesson: filled for completed lessons and
// hollow otherwise.
func StarRow(completed []bool) string {
	filled := lipgloss.NewStyle().Foreground(theme.Star)
	hollow := lipgloss.NewStyle().Foreground(theme.Border)
	var b strings.Builder
	for _, done := range completed {
		if done {
			b.WriteString(filled.Render("★"))
		} else {
			b.WriteString(hollow.Render("☆"))
		}
	}
	return b.String()
}
