package minigame

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

const (
	// MatchingOptions is the number of pictures offered, one of them correct.
	MatchingOptions = 4

	MatchingRevealDelay    = 1000 * time.Millisecond
	MatchingCelebrateDelay = 1500 * time.Millisecond
	MatchingFeedbackWindow = 2000 * time.Millisecond
)

// Option is one picture card in the matching game.
type Option struct {
	ID      string
	Letter  catalog.Letter
	Correct bool
}

// Feedback is what the matching board is currently showing.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	}
	return "none"
}

// Matching asks the learner to pick the picture whose word starts with the
// target letter.
type Matching struct {
	base
	options  []Option
	selected string
	feedback Feedback
}

var _ Engine = (*Matching)(nil)

func (m *Matching) Kind() Kind { return KindMatching }

func (m *Matching) Open(target catalog.Letter) error {
	m.begin(target)
	m.deal()
	return nil
}

// Regenerate deals new options and clears the selection.
func (m *Matching) Regenerate() error {
	if err := m.check(); err != nil {
		return err
	}
	m.gen.Next()
	m.status = StatusInProgress
	m.deal()
	return nil
}

// Options returns the current options in display order.
func (m *Matching) Options() ([]Option, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	return append([]Option(nil), m.options...), nil
}

// Selected returns the ID of the selected option, or "" when none is.
func (m *Matching) Selected() string {
	return m.selected
}

// Feedback returns the feedback being shown.
func (m *Matching) Feedback() Feedback {
	return m.feedback
}

// Select picks the option with the given ID. While feedback is showing the
// board is locked and Select returns the current feedback unchanged.
func (m *Matching) Select(id string) (Feedback, error) {
	if err := m.check(); err != nil {
		return FeedbackNone, err
	}
	if m.feedback != FeedbackNone || m.status == StatusCompleted {
		return m.feedback, nil
	}

	var chosen *Option
	for i := range m.options {
		if m.options[i].ID == id {
			chosen = &m.options[i]
			break
		}
	}
	if chosen == nil {
		return FeedbackNone, fmt.Errorf("select %q: unknown option", id)
	}

	m.selected = id
	if chosen.Correct {
		m.feedback = FeedbackCorrect
		m.after(MatchingRevealDelay, func() {
			m.status = StatusCompleted
			m.after(MatchingCelebrateDelay, m.fire)
		})
	} else {
		m.feedback = FeedbackIncorrect
		m.after(MatchingFeedbackWindow, func() {
			m.selected = ""
			m.feedback = FeedbackNone
		})
	}
	m.cfg.Logger.Debug("option selected",
		zap.String("option", id), zap.Stringer("feedback", m.feedback))
	return m.feedback, nil
}

func (m *Matching) deal() {
	r := m.cfg.Rand
	others := catalog.Others(m.target.Char)
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	opts := make([]Option, 0, MatchingOptions)
	for _, l := range others[:MatchingOptions-1] {
		opts = append(opts, Option{ID: "incorrect-" + l.String(), Letter: l})
	}
	opts = append(opts, Option{ID: "correct-" + m.target.String(), Letter: m.target, Correct: true})
	r.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })

	m.options = opts
	m.selected = ""
	m.feedback = FeedbackNone
}
