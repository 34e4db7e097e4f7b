// Package gesture turns horizontal drags into lesson navigation.
package gesture

import "math"

// DefaultThreshold is the horizontal travel, in gesture units, that counts as
// a swipe.
const DefaultThreshold = 50.0

// Intent is the navigation a finished drag asks for.
type Intent int

const (
	IntentNone Intent = iota
	IntentPrevious
	IntentNext
)

func (i Intent) String() string {
	switch i {
	case IntentPrevious:
		return "previous"
	case IntentNext:
		return "next"
	}
	return "none"
}

// Classify maps a drag displacement to an Intent. The drag must be mostly
// horizontal and travel further than threshold. Dragging left moves to the
// next letter.
func Classify(dx, dy, threshold float64) Intent {
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= threshold {
		return IntentNone
	}
	if dx < 0 {
		return IntentNext
	}
	return IntentPrevious
}

// Router tracks one drag at a time.
type Router struct {
	threshold float64
	active    bool
	x0, y0    float64
}

// NewRouter returns a Router. A non-positive threshold uses DefaultThreshold.
func NewRouter(threshold float64) *Router {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Router{threshold: threshold}
}

// Threshold returns the swipe distance in use.
func (r *Router) Threshold() float64 { return r.threshold }

// Active reports whether a drag is being tracked.
func (r *Router) Active() bool { return r.active }

// Start begins a drag at (x, y), replacing any drag in progress.
func (r *Router) Start(x, y float64) {
	r.active = true
	r.x0, r.y0 = x, y
}

// Move reports whether the drag at (x, y) is clearly horizontal, so the
// surface should stop treating it as a scroll.
func (r *Router) Move(x, y float64) bool {
	if !r.active {
		return false
	}
	dx, dy := math.Abs(x-r.x0), math.Abs(y-r.y0)
	return dx > dy && dx > r.threshold/2
}

// End finishes the drag at (x, y) and classifies it.
func (r *Router) End(x, y float64) Intent {
	if !r.active {
		return IntentNone
	}
	r.active = false
	return Classify(x-r.x0, y-r.y0, r.threshold)
}

// Cancel abandons the drag in progress.
func (r *Router) Cancel() {
	r.active = false
}

// Scale converts terminal cell coordinates into gesture units.
type Scale struct {
	CellWidth, CellHeight float64
}

// DefaultScale approximates a typical terminal cell in pixels.
var DefaultScale = Scale{CellWidth: 8, CellHeight: 16}

// Units returns the gesture coordinates of cell (col, row).
func (s Scale) Units(col, row int) (float64, float64) {
	w, h := s.CellWidth, s.CellHeight
	if w <= 0 {
		w = DefaultScale.CellWidth
	}
	if h <= 0 {
		h = DefaultScale.CellHeight
	}
	return float64(col) * w, float64(row) * h
}
