package minigame

import (
	"fmt"
	"time"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

const (
	HuntGridSize = 16
	HuntTargets  = 4
	HuntHitScore = 10
	HuntMissCost = 2

	HuntCompleteDelay = 2000 * time.Millisecond
)

// Cell is one square of the letter hunt grid. ID is its grid position.
type Cell struct {
	ID     int
	Letter rune
	Target bool
	Found  bool
}

// GuessResult is the outcome of clicking a cell.
type GuessResult int

const (
	GuessIgnored GuessResult = iota
	GuessHit
	GuessMiss
)

func (g GuessResult) String() string {
	switch g {
	case GuessHit:
		return "hit"
	case GuessMiss:
		return "miss"
	}
	return "ignored"
}

// Hunt hides the target letter four times in a 4x4 grid.
type Hunt struct {
	base
	cells []Cell
	found int
	score int
}

var _ Engine = (*Hunt)(nil)

func (h *Hunt) Kind() Kind { return KindLetterHunt }

func (h *Hunt) Open(target catalog.Letter) error {
	h.begin(target)
	h.deal()
	return nil
}

// Regenerate deals a new grid and resets found count and score.
func (h *Hunt) Regenerate() error {
	if err := h.check(); err != nil {
		return err
	}
	h.gen.Next()
	h.status = StatusInProgress
	h.deal()
	return nil
}

// Cells returns the grid in row-major order.
func (h *Hunt) Cells() ([]Cell, error) {
	if err := h.check(); err != nil {
		return nil, err
	}
	return append([]Cell(nil), h.cells...), nil
}

// Found returns how many targets have been found.
func (h *Hunt) Found() int { return h.found }

// TargetCount returns how many targets are hidden.
func (h *Hunt) TargetCount() int { return HuntTargets }

// Score returns the current score.
func (h *Hunt) Score() int { return h.score }

// Guess clicks the cell with the given ID.
func (h *Hunt) Guess(id int) (GuessResult, error) {
	if err := h.check(); err != nil {
		return GuessIgnored, err
	}
	if id < 0 || id >= len(h.cells) {
		return GuessIgnored, fmt.Errorf("guess cell %d: out of grid", id)
	}
	if h.status == StatusCompleted {
		return GuessIgnored, nil
	}

	c := &h.cells[id]
	if c.Found {
		return GuessIgnored, nil
	}
	if !c.Target {
		h.score -= HuntMissCost
		if h.score < 0 {
			h.score = 0
		}
		return GuessMiss, nil
	}

	c.Found = true
	h.found++
	h.score += HuntHitScore
	if h.found == HuntTargets {
		h.status = StatusCompleted
		h.after(HuntCompleteDelay, h.fire)
	}
	return GuessHit, nil
}

func (h *Hunt) deal() {
	r := h.cfg.Rand
	others := catalog.Others(h.target.Char)

	cells := make([]Cell, 0, HuntGridSize)
	for range HuntTargets {
		cells = append(cells, Cell{Letter: h.target.Char, Target: true})
	}
	for len(cells) < HuntGridSize {
		cells = append(cells, Cell{Letter: others[r.IntN(len(others))].Char})
	}
	r.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	for i := range cells {
		cells[i].ID = i
	}

	h.cells = cells
	h.found = 0
	h.score = 0
}
