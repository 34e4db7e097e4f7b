package narrator

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedSynth is a decorator that keeps recently synthesized clips. The
// lesson phrases repeat constantly, so most requests after the first pass
// through the alphabet never reach the backend.
type CachedSynth struct {
	inner Synthesizer
	cache *lru.Cache[cacheKey, *Clip]
}

type cacheKey struct {
	text                string
	rate, pitch, volume float64
	// preference is the joined voice preference list.
	preference string
}

// WithCache wraps a Synthesizer with an LRU clip cache of the given size.
func WithCache(s Synthesizer, size int) (Synthesizer, error) {
	if size <= 0 {
		return s, nil
	}
	c, err := lru.New[cacheKey, *Clip](size)
	if err != nil {
		return nil, fmt.Errorf("create clip cache: %w", err)
	}
	return &CachedSynth{inner: s, cache: c}, nil
}

func (c *CachedSynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	key := cacheKey{
		text:       req.Text,
		rate:       req.Voice.Rate,
		pitch:      req.Voice.Pitch,
		volume:     req.Voice.Volume,
		preference: strings.Join(req.Voice.Preference, "\x00"),
	}
	if clip, ok := c.cache.Get(key); ok {
		return clip, nil
	}
	clip, err := c.inner.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, clip)
	return clip, nil
}

func (c *CachedSynth) Name() string {
	return c.inner.Name()
}

// Len returns the number of cached clips.
func (c *CachedSynth) Len() int {
	return c.cache.Len()
}
