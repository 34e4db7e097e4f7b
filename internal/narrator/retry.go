package narrator

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetrySynth is a decorator that retries transient errors with exponential
// backoff and jitter.
type RetrySynth struct {
	inner  Synthesizer
	config RetryConfig
}

// WithRetry wraps a Synthesizer with retry logic.
func WithRetry(s Synthesizer, cfg RetryConfig) Synthesizer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetrySynth{inner: s, config: cfg}
}

func (r *RetrySynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		clip, err := r.inner.Synthesize(ctx, req)
		if err == nil {
			return clip, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetrySynth) Name() string {
	return r.inner.Name()
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A backend that answered without audio will do so again.
	var empty *ErrEmptyAudio
	if errors.As(err, &empty) {
		return false
	}

	// A missing program doesn't appear between attempts.
	if errors.Is(err, errNotInstalled) {
		return false
	}

	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetrySynth) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
