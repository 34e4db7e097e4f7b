// Package catalog holds the fixed, ordered set of alphabet lessons.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of lessons in the catalog.
const Size = 26

// ErrOutOfRange is returned when a lesson index falls outside [0, Size).
var ErrOutOfRange = errors.New("lesson index out of range")

// Animation identifies the entry animation played when a lesson becomes current.
type Animation int

const (
	AnimationBounce Animation = iota
	AnimationSwing
	AnimationPop
)

var animationNames = map[Animation]string{
	AnimationBounce: "bounce-in",
	AnimationSwing:  "swing-in",
	AnimationPop:    "pop-in",
}

func (a Animation) String() string {
	if s, ok := animationNames[a]; ok {
		return s
	}
	return fmt.Sprintf("animation(%d)", int(a))
}

// ParseAnimation converts "bounce-in", "swing-in" or "pop-in" (or the bare
// "bounce", "swing", "pop") to an Animation.
func ParseAnimation(s string) (Animation, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-in")
	switch s {
	case "bounce":
		return AnimationBounce, nil
	case "swing":
		return AnimationSwing, nil
	case "pop":
		return AnimationPop, nil
	}
	return 0, fmt.Errorf("unknown animation %q", s)
}

// Letter is one lesson: a letter, the word it introduces and how it is shown.
type Letter struct {
	Char      rune
	Word      string
	Image     string
	Color     string
	Animation Animation
}

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(l.Char)
}

// Narration returns the phrase spoken for the lesson, e.g. "A for Apple".
func (l Letter) Narration() string {
	return fmt.Sprintf("%c for %s", l.Char, l.Word)
}

// All returns a copy of every lesson in A-Z order.
func All() []Letter {
	out := make([]Letter, len(letters))
	copy(out, letters)
	return out
}

// At returns the lesson at index i.
func At(i int) (Letter, error) {
	if i < 0 || i >= len(letters) {
		return Letter{}, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(letters))
	}
	return letters[i], nil
}

// ValidIndex reports whether i addresses a lesson.
func ValidIndex(i int) bool {
	return i >= 0 && i < len(letters)
}

// IndexOf returns the index of the lesson for r (case-insensitive), or -1.
func IndexOf(r rune) int {
	r = toUpper(r)
	for i, l := range letters {
		if l.Char == r {
			return i
		}
	}
	return -1
}

// Lookup returns the lesson for r (case-insensitive).
func Lookup(r rune) (Letter, bool) {
	i := IndexOf(r)
	if i < 0 {
		return Letter{}, false
	}
	return letters[i], true
}

// Others returns every lesson except the one for r, in catalog order.
func Others(r rune) []Letter {
	r = toUpper(r)
	out := make([]Letter, 0, len(letters)-1)
	for _, l := range letters {
		if l.Char != r {
			out = append(out, l)
		}
	}
	return out
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
