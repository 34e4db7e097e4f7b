package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAudioEvent(ctx context.Context, data AudioEventData) error {
	err := r.insert(ctx, "audio_events", data.SessionID,
		[]string{"backend", "kind", "text", "latency_ms", "success", "error_message"},
		data.Backend, data.Kind, data.Text, data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save audio event: %w", err)
	}
	return nil
}
