package hunt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

func (h *HuntScreen) View(width, height int) string {
	l := h.env.Session.Current()
	cells, err := h.engine.Cells()
	if err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
	status, _ := h.engine.Status()

	prompt := lipgloss.NewStyle().Foreground(theme.Text).
		Render(minigame.KindLetterHunt.Describe(l))
	score := lipgloss.NewStyle().Foreground(theme.Star).
		Render(fmt.Sprintf("Found %d of %d   Score %d",
			h.engine.Found(), h.engine.TargetCount(), h.engine.Score()))

	var rows []string
	for start := 0; start < len(cells); start += columns {
		var tiles []string
		for i := start; i < start+columns && i < len(cells); i++ {
			if i > start {
				tiles = append(tiles, strings.Repeat(" ", gap))
			}
			tiles = append(tiles, h.renderTile(cells[i], l.Color))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	footer := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Click or press Enter on every " + l.String())
	if status == minigame.StatusCompleted {
		footer = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("★ You found them all! ★")
	}

	lines := []string{prompt, score, ""}
	lines = append(lines, rows...)
	lines = append(lines, "", footer)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func (h *HuntScreen) renderTile(c minigame.Cell, hex string) string {
	border := theme.Border
	fg := theme.Text
	switch {
	case c.Found:
		border, fg = theme.Success, theme.LetterColor(hex)
	case c.ID == h.missed:
		border, fg = theme.Error, theme.Error
	}
	if c.ID == h.cursor {
		border = theme.ArcadeYellow
	}
	label := string(c.Letter)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(fg).
		Bold(true).
		Padding(0, 2).
		Render(label)
}
