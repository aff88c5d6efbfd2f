package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    PixelColor
	}{
		{name: "black", want: 0},
		{name: "white", r: 1, g: 1, b: 1, want: 0x02020200},
		{name: "red only", r: 1, want: 0x00020000},
		{name: "green only", g: 1, want: 0x02000000},
		{name: "blue only", b: 1, want: 0x00000200},
		{name: "half truncates down", r: 0.5, g: 0.5, b: 0.5, want: 0x01010100},
		{name: "just below one step", r: 0.39, want: 0},
		{name: "above range clamps", r: 3, g: -1, b: 1, want: 0x00020200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.r, tt.g, tt.b))
		})
	}
}

func TestEncodeChannelBounds(t *testing.T) {
	assert.Equal(t, uint8(2), MaxChannel)
	full := Encode(1, 1, 1)
	assert.Equal(t, MaxChannel, full.Red())
	assert.Equal(t, MaxChannel, full.Green())
	assert.Equal(t, MaxChannel, full.Blue())

	for r := 0.0; r <= 1.0; r += 0.05 {
		for g := 0.0; g <= 1.0; g += 0.1 {
			c := Encode(r, g, 1-r)
			assert.LessOrEqual(t, c.Red(), MaxChannel)
			assert.LessOrEqual(t, c.Green(), MaxChannel)
			assert.LessOrEqual(t, c.Blue(), MaxChannel)
			assert.Zero(t, uint32(c)&0xFF, "reserved byte must stay zero")
		}
	}
}

func TestPixelColorChannels(t *testing.T) {
	c := PixelColor(0x11223300)
	assert.Equal(t, uint8(0x11), c.Green())
	assert.Equal(t, uint8(0x22), c.Red())
	assert.Equal(t, uint8(0x33), c.Blue())
}
