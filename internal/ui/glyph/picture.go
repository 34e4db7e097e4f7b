package glyph

// pictures stands in for each lesson's illustration in the terminal.
var pictures = map[string]string{
	"Apple":     "🍎",
	"Ball":      "⚽",
	"Cat":       "🐱",
	"Dog":       "🐶",
	"Elephant":  "🐘",
	"Fish":      "🐠",
	"Giraffe":   "🦒",
	"House":     "🏠",
	"Ice Cream": "🍦",
	"Jellyfish": "🪼",
	"Kite":      "🪁",
	"Lion":      "🦁",
	"Moon":      "🌙",
	"Nest":      "🪺",
	"Octopus":   "🐙",
	"Penguin":   "🐧",
	"Queen":     "👑",
	"Rainbow":   "🌈",
	"Sun":       "☀️",
	"Tree":      "🌳",
	"Umbrella":  "☂️",
	"Violin":    "🎻",
	"Whale":     "🐳",
	"Xylophone": "🎶",
	"Yacht":     "⛵",
	"Zebra":     "🦓",
}

// Picture returns the emoji shown for a lesson word, or a star when the
// word has none.
func Picture(word string) string {
	if p, ok := pictures[word]; ok {
		return p
	}
	return "⭐"
}
