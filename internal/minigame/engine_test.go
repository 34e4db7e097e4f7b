package minigame

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/clock"
)

type harness struct {
	clock     *clock.Manual
	completed int
}

func newHarness() *harness {
	return &harness{clock: clock.NewManual()}
}

func (h *harness) config() Config {
	return Config{
		Scheduler:  h.clock,
		Rand:       rand.New(rand.NewPCG(1, 2)),
		OnComplete: func() { h.completed++ },
	}
}

func letter(t *testing.T, r rune) catalog.Letter {
	t.Helper()
	l, ok := catalog.Lookup(r)
	require.True(t, ok)
	return l
}

func TestNewRequiresScheduler(t *testing.T) {
	_, err := New(KindTracing, Config{})
	require.Error(t, err)
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Kind(42), newHarness().config())
	require.Error(t, err)
}

func TestNewReturnsVariant(t *testing.T) {
	h := newHarness()
	for _, k := range Kinds() {
		e, err := New(k, h.config())
		require.NoError(t, err)
		assert.Equal(t, k, e.Kind())
	}
}

func TestOperationsBeforeOpen(t *testing.T) {
	h := newHarness()
	for _, k := range Kinds() {
		e, err := New(k, h.config())
		require.NoError(t, err)

		_, err = e.Status()
		assert.True(t, errors.Is(err, ErrInvalidState), k.String())
		_, err = e.Target()
		assert.True(t, errors.Is(err, ErrInvalidState), k.String())
		assert.True(t, errors.Is(e.Regenerate(), ErrInvalidState), k.String())

		// Close is unconditional.
		e.Close()
	}
}

func TestOperationsAfterClose(t *testing.T) {
	h := newHarness()
	e, err := New(KindMatching, h.config())
	require.NoError(t, err)
	require.NoError(t, e.Open(letter(t, 'B')))
	e.Close()

	_, err = e.Status()
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = e.(*Matching).Select("correct-B")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"tracing", KindTracing},
		{"Matching", KindMatching},
		{"letter-hunt", KindLetterHunt},
		{"find-letter", KindLetterHunt},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("chess")
	assert.Error(t, err)
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Title())
	}
}
