package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Intent
	}{
		{"left swipe", -80, 10, IntentNext},
		{"right swipe", 80, 0, IntentPrevious},
		{"mostly vertical", 30, 60, IntentNone},
		{"too short", 40, 0, IntentNone},
		{"exactly threshold", 50, 0, IntentNone},
		{"diagonal tie", 60, 60, IntentNone},
		{"no movement", 0, 0, IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dx, tt.dy, DefaultThreshold))
		})
	}
}

func TestRouterSwipe(t *testing.T) {
	r := NewRouter(0)
	assert.Equal(t, DefaultThreshold, r.Threshold())

	r.Start(200, 100)
	assert.True(t, r.Active())
	assert.False(t, r.Move(190, 100), "below half threshold")
	assert.True(t, r.Move(170, 102))
	assert.Equal(t, IntentNext, r.End(120, 105))
	assert.False(t, r.Active())
}

func TestRouterVerticalDragNotSuppressed(t *testing.T) {
	r := NewRouter(DefaultThreshold)
	r.Start(0, 0)
	assert.False(t, r.Move(30, 80))
	assert.Equal(t, IntentNone, r.End(30, 80))
}

func TestRouterWithoutStart(t *testing.T) {
	r := NewRouter(DefaultThreshold)
	assert.False(t, r.Move(100, 0))
	assert.Equal(t, IntentNone, r.End(100, 0))
}

func TestRouterCancel(t *testing.T) {
	r := NewRouter(DefaultThreshold)
	r.Start(0, 0)
	r.Cancel()
	assert.Equal(t, IntentNone, r.End(200, 0))
}

func TestScaleUnits(t *testing.T) {
	x, y := DefaultScale.Units(10, 3)
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 48.0, y)

	x, y = Scale{}.Units(1, 1)
	assert.Equal(t, 8.0, x)
	assert.Equal(t, 16.0, y)
}
