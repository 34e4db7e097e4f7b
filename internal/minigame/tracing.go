package minigame

import (
	"time"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

const (
	// TracingSamples is the sample count that counts as a full trace.
	TracingSamples = 100

	// TracingThreshold is the progress at which tracing is complete.
	TracingThreshold = 0.8

	TracingCompleteDelay = 1000 * time.Millisecond
)

// Point is a pointer sample in the drawing surface's coordinates.
type Point struct {
	X, Y float64
}

// Tracing scores freehand drawing by how many samples the current stroke
// has. It does not compare the path with the letter outline: any long
// enough scribble completes it. Earlier strokes stay on the canvas but no
// longer count.
type Tracing struct {
	base
	strokes  [][]Point
	samples  int
	progress float64
	drawing  bool
}

var _ Engine = (*Tracing)(nil)

func (t *Tracing) Kind() Kind { return KindTracing }

func (t *Tracing) Open(target catalog.Letter) error {
	t.begin(target)
	t.clear()
	return nil
}

// Regenerate clears the drawing. A completion already earned stands, and
// its pending callback still fires.
func (t *Tracing) Regenerate() error {
	if err := t.check(); err != nil {
		return err
	}
	t.clear()
	return nil
}

// Reset is Regenerate under the name the game shows ("Try Again").
func (t *Tracing) Reset() error {
	return t.Regenerate()
}

// Begin starts a new stroke at p. Progress restarts from this stroke.
func (t *Tracing) Begin(p Point) error {
	if err := t.check(); err != nil {
		return err
	}
	t.drawing = true
	t.strokes = append(t.strokes, []Point{p})
	t.samples = 0
	t.record()
	return nil
}

// Extend adds p to the current stroke and returns the new progress.
// Samples outside a stroke are ignored.
func (t *Tracing) Extend(p Point) (float64, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	if !t.drawing || len(t.strokes) == 0 {
		return t.progress, nil
	}
	last := len(t.strokes) - 1
	t.strokes[last] = append(t.strokes[last], p)
	t.record()
	return t.progress, nil
}

// End finishes the current stroke.
func (t *Tracing) End() error {
	if err := t.check(); err != nil {
		return err
	}
	t.drawing = false
	return nil
}

// Progress returns min(samples/TracingSamples, 1) for the current or last
// stroke.
func (t *Tracing) Progress() float64 {
	return t.progress
}

// Drawing reports whether a stroke is in progress.
func (t *Tracing) Drawing() bool {
	return t.drawing
}

// Strokes returns a copy of the drawn strokes.
func (t *Tracing) Strokes() [][]Point {
	out := make([][]Point, len(t.strokes))
	for i, s := range t.strokes {
		out[i] = append([]Point(nil), s...)
	}
	return out
}

func (t *Tracing) record() {
	t.samples++
	t.progress = float64(t.samples) / TracingSamples
	if t.progress > 1 {
		t.progress = 1
	}
	if t.progress >= TracingThreshold && t.status == StatusInProgress {
		t.status = StatusCompleted
		t.after(TracingCompleteDelay, t.fire)
	}
}

func (t *Tracing) clear() {
	t.strokes = nil
	t.samples = 0
	t.progress = 0
	t.drawing = false
}
