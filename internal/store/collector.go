package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// collectTimeout bounds a single append so a locked database can't stall
// the UI loop.
const collectTimeout = 2 * time.Second

// Collector stamps events with the running session's id and appends them.
// Failures are logged and otherwise ignored. A nil *Collector is valid and
// records nothing.
type Collector struct {
	repo      EventRepo
	sessionID string
	logger    *zap.Logger
}

// NewCollector starts a new collector session.
func NewCollector(repo EventRepo, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()
	return &Collector{
		repo:      repo,
		sessionID: id,
		logger:    logger.Named("collector").With(zap.String("session", id)),
	}
}

// SessionID returns the id stamped on every event.
func (c *Collector) SessionID() string {
	if c == nil {
		return ""
	}
	return c.sessionID
}

// Lesson records a lesson transition.
func (c *Collector) Lesson(action, letter string, index int) {
	if c == nil || c.repo == nil {
		return
	}
	c.append("lesson", func(ctx context.Context) error {
		return c.repo.AppendLessonEvent(ctx, LessonEventData{
			SessionID: c.sessionID,
			Action:    action,
			Letter:    letter,
			Index:     index,
		})
	})
}

// Game records a mini-game transition.
func (c *Collector) Game(action, letter, game string, score int, dur time.Duration) {
	if c == nil || c.repo == nil {
		return
	}
	c.append("game", func(ctx context.Context) error {
		return c.repo.AppendGameEvent(ctx, GameEventData{
			SessionID:  c.sessionID,
			Action:     action,
			Letter:     letter,
			Game:       game,
			Score:      score,
			DurationMs: dur.Milliseconds(),
		})
	})
}

// Audio records a narration or cue request.
func (c *Collector) Audio(data AudioEventData) {
	if c == nil || c.repo == nil {
		return
	}
	data.SessionID = c.sessionID
	c.append("audio", func(ctx context.Context) error {
		return c.repo.AppendAudioEvent(ctx, data)
	})
}

func (c *Collector) append(kind string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		c.logger.Warn("append event failed", zap.String("type", kind), zap.Error(err))
	}
}
