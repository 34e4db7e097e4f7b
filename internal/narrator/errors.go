package narrator

import (
	"errors"
	"fmt"
	"time"
)

// errNotInstalled marks a backend whose program is missing.
var errNotInstalled = errors.New("not installed")

// ErrRateLimit indicates the speech backend returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrBackendUnavailable indicates the backend is down, unreachable or not
// installed.
type ErrBackendUnavailable struct {
	Backend string
	Err     error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech backend %s unavailable: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("speech backend %s unavailable", e.Backend)
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrEmptyAudio indicates the backend answered without any audio.
type ErrEmptyAudio struct {
	Backend string
}

func (e *ErrEmptyAudio) Error() string {
	return fmt.Sprintf("speech backend %s returned no audio", e.Backend)
}
