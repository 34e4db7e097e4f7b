package tracing

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/minigame"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/components"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/glyph"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

func (t *TracingScreen) View(width, height int) string {
	l := t.env.Session.Current()
	status, _ := t.engine.Status()

	instruction := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(minigame.KindTracing.Describe(l))

	canvas := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(t.renderCanvas(l.Char, l.Color))

	bar := components.ProgressBar{
		Label:       "Progress",
		Ratio:       t.engine.Progress(),
		Width:       canvasW + 2,
		Fill:        theme.LetterColor(l.Color),
		ShowPercent: true,
	}

	footer := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Hold the mouse button and draw!")
	if status == minigame.StatusCompleted {
		footer = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("★ Great tracing! ★")
	}

	content := strings.Join([]string{instruction, "", canvas, "", bar.View(), footer}, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// renderCanvas overlays the drawn strokes on a faint guide glyph.
func (t *TracingScreen) renderCanvas(r rune, hex string) string {
	ink := make([][]bool, canvasH)
	for i := range ink {
		ink[i] = make([]bool, canvasW)
	}
	for _, stroke := range t.engine.Strokes() {
		for _, p := range stroke {
			x, y := int(p.X), int(p.Y)
			if y >= 0 && y < canvasH && x >= 0 && x < canvasW {
				ink[y][x] = true
			}
		}
	}

	guide := lipgloss.NewStyle().Foreground(theme.Border)
	pen := lipgloss.NewStyle().Foreground(theme.LetterColor(hex))

	lines := make([]string, canvasH)
	for y := range canvasH {
		var b strings.Builder
		for x := range canvasW {
			switch {
			case ink[y][x]:
				b.WriteString(pen.Render("●"))
			case glyph.Filled(r, y/cellH, x/cellW):
				b.WriteString(guide.Render("░"))
			default:
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
