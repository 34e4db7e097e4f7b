package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/audio"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/gesture"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/lesson"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold resources which must be
// released when the screen leaves the stack.
type Closer interface {
	Close()
}

// SizeMsg carries the size of the content area between header and footer.
// It is sent on resize and whenever a screen becomes active. Mouse messages
// forwarded to screens use coordinates relative to the same area.
type SizeMsg struct {
	Width  int
	Height int
}

// FrameInterval is the time between two FrameMsgs.
const FrameInterval = 100 * time.Millisecond

// FrameMsg is broadcast to the active screen on every animation frame.
type FrameMsg struct {
	Frame int
}

// Env is the shared state handed to the lesson and game screens.
type Env struct {
	Session *lesson.Session
	Audio   *audio.Preferences

	// SwipeThreshold is the drag distance, in gesture units, that turns a
	// mouse drag into a swipe.
	SwipeThreshold float64
	Scale          gesture.Scale
}
