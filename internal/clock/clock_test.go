package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMicrosTruncatesTo32Bits(t *testing.T) {
	assert.Equal(t, uint32(200000), Micros(200*time.Millisecond))
	assert.Equal(t, uint32(5), Micros(1<<32*time.Microsecond+5*time.Microsecond))
}

func TestManualAdvance(t *testing.T) {
	c := &Manual{}
	c.Advance(50 * time.Millisecond)
	c.Advance(time.Millisecond)
	assert.Equal(t, uint32(51000), c.Micros())
}

func TestMonotonicMovesForward(t *testing.T) {
	c := NewMonotonic()
	first := c.Micros()
	time.Sleep(2 * time.Millisecond)
	assert.Greater(t, c.Micros(), first)
}
