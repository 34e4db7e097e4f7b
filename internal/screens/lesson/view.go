package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/components"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/glyph"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	sess := s.env.Session
	l := sess.Current()
	compact := layout.IsCompactHeight(height)

	var sections []string

	sections = append(sections, components.StarRow(s.completedFlags()))

	card := s.renderCard(l, compact)
	sections = append(sections, card)

	sections = append(sections, s.renderCaption(l))

	bar := components.ProgressBar{
		Label: fmt.Sprintf("Letter %d of %d", sess.Index()+1, catalog.Size),
		Ratio: float64(sess.Index()+1) / float64(catalog.Size),
		Width: min(width-8, 60),
		Fill:  theme.LetterColor(l.Color),
	}
	sections = append(sections, bar.View())

	if s.swiping {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("◀  swipe  ▶"))
	}

	content := strings.Join(sections, "\n\n")
	if compact {
		content = strings.Join(sections, "\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) completedFlags() []bool {
	p := s.env.Session.Progress()
	flags := make([]bool, p.Size())
	for _, i := range p.Completed() {
		flags[i] = true
	}
	return flags
}

// renderCard draws the letter card at the current frame of its entry
// animation.
func (s *LessonScreen) renderCard(l catalog.Letter, compact bool) string {
	frame := -1
	if s.env.Session.Animating() && s.entry == s.env.Session.Entry() {
		frame = s.frame
	}
	pose := poseAt(l.Animation, frame)

	var body string
	switch {
	case compact:
		body = l.String() + "  " + strings.ToLower(l.String())
	case pose.small:
		body = "\n\n\n" + l.String() + "\n\n\n"
	default:
		body = glyph.Big(l.Char)
	}

	card := theme.LetterCard(l.Color).Render(body)
	if s.env.Session.Progress().IsCompleted(s.env.Session.Index()) {
		card = lipgloss.JoinVertical(lipgloss.Center, card,
			lipgloss.NewStyle().Foreground(theme.Star).Render("★ learned ★"))
	}
	return offset(card, pose.dx, pose.dy, maxDrop)
}

func (s *LessonScreen) renderCaption(l catalog.Letter) string {
	c := theme.LetterColor(l.Color)
	caption := lipgloss.NewStyle().Foreground(c).Bold(true).Render(l.String()) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(" for ") +
		lipgloss.NewStyle().Foreground(c).Bold(true).Render(l.Word) +
		"  " + glyph.Picture(l.Word)

	st := s.env.Audio.State()
	switch {
	case st.Speaking:
		caption += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  🔊")
	case st.Muted:
		caption += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  🔇")
	}
	return caption
}

// offset pads a block so it sits dx columns off center and dy rows down
// inside a band rows tall. The band keeps the layout still while the card
// moves.
func offset(block string, dx, dy, band int) string {
	lines := strings.Split(block, "\n")
	pad := strings.Repeat(" ", abs(dx))
	for i, line := range lines {
		if dx > 0 {
			lines[i] = pad + line
		} else if dx < 0 {
			lines[i] = line + pad
		}
	}
	top := strings.Repeat("\n", dy)
	bottom := strings.Repeat("\n", max(band-dy, 0))
	return top + strings.Join(lines, "\n") + bottom
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
