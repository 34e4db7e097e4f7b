package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	err := r.insert(ctx, "lesson_events", data.SessionID,
		[]string{"action", "letter", "letter_index"},
		data.Action, data.Letter, data.Index,
	)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
