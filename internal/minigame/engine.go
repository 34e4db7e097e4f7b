// Package minigame implements the per-letter practice games. Each variant is
// a small state machine that owns its session data and reports completion
// exactly once through Config.OnComplete.
package minigame

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
)

// ErrInvalidState is returned by any operation on a game that is not open.
var ErrInvalidState = errors.New("no open game session")

// Kind selects a game variant.
type Kind int

const (
	KindTracing Kind = iota
	KindMatching
	KindLetterHunt
)

// Kinds lists every variant in menu order.
func Kinds() []Kind {
	return []Kind{KindTracing, KindMatching, KindLetterHunt}
}

func (k Kind) String() string {
	switch k {
	case KindTracing:
		return "tracing"
	case KindMatching:
		return "matching"
	case KindLetterHunt:
		return "letter-hunt"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Title is the name shown in the game selector.
func (k Kind) Title() string {
	switch k {
	case KindTracing:
		return "Letter Tracing"
	case KindMatching:
		return "Picture Matching"
	case KindLetterHunt:
		return "Letter Hunt"
	}
	return k.String()
}

// Describe returns the one-line instruction for practicing l.
func (k Kind) Describe(l catalog.Letter) string {
	switch k {
	case KindTracing:
		return fmt.Sprintf("Trace the letter %c with your mouse", l.Char)
	case KindMatching:
		return fmt.Sprintf("Find the picture that starts with %c", l.Char)
	case KindLetterHunt:
		return fmt.Sprintf("Find all the %c letters in the grid", l.Char)
	}
	return ""
}

// ParseKind accepts the String form of a Kind ("find-letter" is an alias for
// letter-hunt).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tracing", "trace":
		return KindTracing, nil
	case "matching", "match":
		return KindMatching, nil
	case "letter-hunt", "hunt", "find-letter":
		return KindLetterHunt, nil
	}
	return 0, fmt.Errorf("unknown game %q", s)
}

// Status is the lifecycle of an open game.
type Status int

const (
	StatusInProgress Status = iota
	StatusCompleted
)

func (s Status) String() string {
	if s == StatusCompleted {
		return "completed"
	}
	return "in-progress"
}

// Config holds what every variant needs.
type Config struct {
	Scheduler clock.Scheduler

	// Rand drives option and grid generation. Nil uses a randomly seeded source.
	Rand *rand.Rand

	// OnComplete is called at most once per Open.
	OnComplete func()

	Logger *zap.Logger
}

// Engine is the capability shared by all variants.
type Engine interface {
	Kind() Kind

	// Open starts a fresh session for target, discarding any previous one.
	Open(target catalog.Letter) error

	// Regenerate deals a fresh board (matching, letter hunt) or clears the
	// drawing (tracing) without closing the session.
	Regenerate() error

	// Close discards the session unconditionally. Pending completion
	// callbacks are dropped.
	Close()

	Status() (Status, error)
	Target() (catalog.Letter, error)
}

// New creates an unopened engine of the given kind.
func New(kind Kind, cfg Config) (Engine, error) {
	if cfg.Scheduler == nil {
		return nil, errors.New("minigame: scheduler is required")
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Logger = cfg.Logger.Named("minigame").With(zap.Stringer("kind", kind))

	switch kind {
	case KindTracing:
		return &Tracing{base: base{cfg: cfg}}, nil
	case KindMatching:
		return &Matching{base: base{cfg: cfg}}, nil
	case KindLetterHunt:
		return &Hunt{base: base{cfg: cfg}}, nil
	}
	return nil, fmt.Errorf("minigame: unknown kind %d", int(kind))
}

// base carries the session bookkeeping shared by the variants.
type base struct {
	cfg    Config
	gen    clock.Generation
	open   bool
	target catalog.Letter
	status Status
	fired  bool
}

func (b *base) begin(target catalog.Letter) {
	b.gen.Next()
	b.open = true
	b.target = target
	b.status = StatusInProgress
	b.fired = false
	b.cfg.Logger.Debug("game opened", zap.String("letter", target.String()))
}

func (b *base) Close() {
	if !b.open {
		return
	}
	b.gen.Next()
	b.open = false
	b.cfg.Logger.Debug("game closed",
		zap.String("letter", b.target.String()), zap.Stringer("status", b.status))
}

func (b *base) check() error {
	if !b.open {
		return ErrInvalidState
	}
	return nil
}

func (b *base) Status() (Status, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	return b.status, nil
}

func (b *base) Target() (catalog.Letter, error) {
	if err := b.check(); err != nil {
		return catalog.Letter{}, err
	}
	return b.target, nil
}

// after schedules fn for the current session and board only.
func (b *base) after(d time.Duration, fn func()) {
	b.gen.After(b.cfg.Scheduler, d, fn)
}

// fire invokes OnComplete the first time it is called per session.
func (b *base) fire() {
	if b.fired {
		return
	}
	b.fired = true
	b.cfg.Logger.Info("game completed", zap.String("letter", b.target.String()))
	if b.cfg.OnComplete != nil {
		b.cfg.OnComplete()
	}
}
