package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphsAreBinary(t *testing.T) {
	for d := 0; d < NumDigits; d++ {
		g := GlyphFor(d)
		assert.Len(t, g, NumPixels)
		for i, v := range g {
			assert.Contains(t, []uint8{0, 1}, v, "digit %d cell %d", d, i)
			assert.Equal(t, v == 1, g.Lit(i))
		}
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := make(map[Glyph]int)
	for d := 0; d < NumDigits; d++ {
		g := GlyphFor(d)
		if prev, ok := seen[g]; ok {
			t.Errorf("digit %d has the same glyph as digit %d", d, prev)
		}
		seen[g] = d
	}
}

func TestGlyphForOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { GlyphFor(NumDigits) })
	assert.Panics(t, func() { GlyphFor(-1) })
}
