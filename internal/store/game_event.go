package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	err := r.insert(ctx, "game_events", data.SessionID,
		[]string{"action", "letter", "game", "score", "duration_ms"},
		data.Action, data.Letter, data.Game, data.Score, data.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}
