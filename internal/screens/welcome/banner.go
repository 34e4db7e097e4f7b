package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██████╗  ██████╗
 ██╔══██╗██╔══██╗██╔════╝
 ███████║██████╔╝██║
 ██╔══██║██╔══██╗██║
 ██║  ██║██████╔╝╚██████╗
 ╚═╝  ╚═╝╚═════╝  ╚═════╝`

const bannerCompact = "A B C"

// bannerColors paint the three banner letters.
var bannerColors = []string{"#ef4444", "#3b82f6", "#f97316"}

// RenderBanner returns the ABC banner, one color per letter.
// Uses a compact fallback for terminals narrower than 30 columns.
func RenderBanner(width int) string {
	if width < 30 {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(bannerCompact)
	}

	// Each letter occupies an 8-column slice of the art.
	lines := strings.Split(strings.TrimPrefix(bannerArt, "\n"), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		var b strings.Builder
		for j, c := range bannerColors {
			lo, hi := j*8, (j+1)*8
			if j == len(bannerColors)-1 {
				hi = len(runes)
			}
			if lo >= len(runes) {
				break
			}
			if hi > len(runes) {
				hi = len(runes)
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.LetterColor(c)).
				Bold(true).
				Render(string(runes[lo:hi])))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
