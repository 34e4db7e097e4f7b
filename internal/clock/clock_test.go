package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestManual_RunsInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.After(300*time.Millisecond, func() { order = append(order, "c") })
	m.After(100*time.Millisecond, func() { order = append(order, "a") })
	m.After(100*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, m.Pending())
}

func TestManual_NestedSchedulingWithinWindow(t *testing.T) {
	m := NewManual()
	var fired []time.Duration

	m.After(100*time.Millisecond, func() {
		fired = append(fired, m.Now())
		m.After(100*time.Millisecond, func() { fired = append(fired, m.Now()) })
	})

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, fired)
	assert.Equal(t, 250*time.Millisecond, m.Now())
}

func TestGeneration_DropsStaleCallbacks(t *testing.T) {
	m := NewManual()
	var g Generation
	ran := 0

	g.After(m, 50*time.Millisecond, func() { ran++ })
	g.Next()
	g.After(m, 80*time.Millisecond, func() { ran += 10 })
	g.Next()

	m.Advance(time.Second)
	assert.Equal(t, 0, ran, "both callbacks bound to superseded generations")

	g.After(m, 10*time.Millisecond, func() { ran++ })
	m.Advance(time.Second)
	assert.Equal(t, 1, ran)
}

func TestLoop_DeliversAfterDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(4)
	defer l.Close()

	ran := false
	l.After(5*time.Millisecond, func() { ran = true })

	fn, ok := l.Next()
	require.True(t, ok)
	fn()
	assert.True(t, ran)
}

func TestLoop_NextAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(1)
	l.Close()

	_, ok := l.Next()
	assert.False(t, ok)

	// Posting after close must not block.
	l.Post(func() {})
}
