package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/router"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/screen"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

const (
	sparkleStart = 500 * time.Millisecond
	bannerStart  = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const mascotArt = `   ╭─────╮
   │ ◕ ◕ │
   │  ▿  │
  ╭┴─────┴╮
  │ A B C │
  ╰───────╯`

var sparkleFrames = []string{"★", "✦"}

// WelcomeScreen shows the mascot and banner until the learner presses a
// key or clicks, then hands over to the first lesson.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	frames       int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case screen.FrameMsg:
		w.elapsed = min(w.elapsed+screen.FrameInterval, totalDur)
		w.frames++

	case tea.KeyPressMsg, tea.MouseClickMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderMascot()}

	if w.elapsed >= bannerStart {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Let's learn the ABCs!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start")
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			tagline,
			w.renderParade(),
			"",
			hint,
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderMascot draws the mascot, with blinking sparkles once the intro is
// under way.
func (w *WelcomeScreen) renderMascot() string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed < sparkleStart {
		return mascot
	}

	sparkle := sparkleFrames[w.frames%len(sparkleFrames)]
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

	lines := strings.Split(mascot, "\n")
	for i := 0; i < len(lines); i += 2 {
		if i%4 == 0 {
			lines[i] = a + "  " + lines[i] + "  " + b
		} else {
			lines[i] = b + "  " + lines[i] + "  " + a
		}
	}
	return strings.Join(lines, "\n")
}

// renderParade reveals the alphabet one letter per frame after the banner
// appears, each letter in its lesson color.
func (w *WelcomeScreen) renderParade() string {
	shown := int((w.elapsed - bannerStart) / screen.FrameInterval)
	letters := catalog.All()
	shown = max(0, min(shown, len(letters)))

	var b strings.Builder
	for _, l := range letters[:shown] {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.LetterColor(l.Color)).Bold(true).Render(l.String()))
	}
	return b.String()
}
