package narrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

// RecordingSynth is a decorator that logs every synthesis request and
// reports it to the event collector.
type RecordingSynth struct {
	inner     Synthesizer
	collector *store.Collector
	logger    *zap.Logger
}

// WithRecording wraps a Synthesizer with logging and event collection. A nil
// collector only logs.
func WithRecording(s Synthesizer, c *store.Collector, logger *zap.Logger) Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordingSynth{inner: s, collector: c, logger: logger}
}

func (r *RecordingSynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	start := time.Now()
	clip, err := r.inner.Synthesize(ctx, req)
	latency := time.Since(start)

	data := store.AudioEventData{
		Backend:   r.inner.Name(),
		Kind:      store.AudioSpeak,
		Text:      req.Text,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		r.logger.Warn("synthesis failed",
			zap.String("backend", data.Backend), zap.String("text", req.Text),
			zap.Duration("latency", latency), zap.Error(err))
	} else {
		r.logger.Debug("synthesized",
			zap.String("backend", data.Backend), zap.String("text", req.Text),
			zap.Duration("latency", latency), zap.Int("bytes", len(clip.Data)))
	}
	r.collector.Audio(data)

	return clip, err
}

func (r *RecordingSynth) Name() string {
	return r.inner.Name()
}
