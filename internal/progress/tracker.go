// Package progress tracks which lessons have been completed in the current run.
package progress

import (
	"fmt"
	"sort"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

// Tracker records completed lesson indices. Completion is monotone: there is
// no way to un-complete a lesson.
type Tracker struct {
	size      int
	completed map[int]bool
}

// NewTracker creates a Tracker for a catalog of the given size.
// A size <= 0 uses catalog.Size.
func NewTracker(size int) *Tracker {
	if size <= 0 {
		size = catalog.Size
	}
	return &Tracker{
		size:      size,
		completed: make(map[int]bool),
	}
}

// Size returns the number of lessons tracked.
func (t *Tracker) Size() int {
	return t.size
}

// MarkCompleted adds i to the completed set. Re-marking is a no-op.
func (t *Tracker) MarkCompleted(i int) error {
	if i < 0 || i >= t.size {
		return fmt.Errorf("mark completed: %w: %d not in [0,%d)", catalog.ErrOutOfRange, i, t.size)
	}
	t.completed[i] = true
	return nil
}

// IsCompleted reports whether lesson i has been completed.
func (t *Tracker) IsCompleted(i int) bool {
	return t.completed[i]
}

// Count returns the number of completed lessons.
func (t *Tracker) Count() int {
	return len(t.completed)
}

// Ratio returns Count / Size.
func (t *Tracker) Ratio() float64 {
	return float64(len(t.completed)) / float64(t.size)
}

// Completed returns the completed indices in ascending order.
func (t *Tracker) Completed() []int {
	out := make([]int, 0, len(t.completed))
	for i := range t.completed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
