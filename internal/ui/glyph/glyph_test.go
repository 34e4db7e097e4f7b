package glyph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
)

func TestEveryLessonHasGlyphAndPicture(t *testing.T) {
	for _, l := range catalog.All() {
		assert.True(t, Has(l.Char), "missing glyph for %c", l.Char)
		assert.NotEqual(t, "⭐", Picture(l.Word), "missing picture for %s", l.Word)
	}
}

func TestBigShape(t *testing.T) {
	lines := strings.Split(Big('L'), "\n")
	require.Len(t, lines, Rows)
	for _, line := range lines {
		assert.Equal(t, Cols*2, len([]rune(line)))
	}
	assert.Equal(t, strings.Repeat("█", Cols*2), lines[Rows-1])
}

func TestFilled(t *testing.T) {
	assert.True(t, Filled('T', 0, 0))
	assert.False(t, Filled('T', 1, 0))
	assert.False(t, Filled('T', -1, 0))
	assert.False(t, Filled('?', 0, 0))
}

func TestRenderUnknownRune(t *testing.T) {
	assert.Equal(t, "?", Big('?'))
}
