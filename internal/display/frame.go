package display

import (
	"fmt"
)

//go:generate mockgen -destination "mock_display_test.go" -package $GOPACKAGE -write_package_comment=false github.com/fkcurrie/digit-matrix-golang/internal/display PixelSink

// PixelSink accepts color words for the LED chain, one per physical LED in
// ascending position order. Put blocks until the hardware takes the word.
type PixelSink interface {
	Put(c PixelColor) error
}

// SinkFunc adapts a function to PixelSink
type SinkFunc func(c PixelColor) error

// Put calls f(c)
func (f SinkFunc) Put(c PixelColor) error {
	return f(c)
}

// Frame holds one color word per physical LED, in sink order
type Frame [NumPixels]PixelColor

// MirrorIndex maps a physical position to the glyph cell it shows. The
// matrix is mounted flipped left to right, so the column is reversed within
// its row. MirrorIndex(MirrorIndex(i)) == i.
func MirrorIndex(i int) int {
	return (i/Columns)*Columns + (Columns - 1 - i%Columns)
}

// RenderFrame builds the frame for digit as a white glyph at the global
// brightness.
func RenderFrame(digit int) Frame {
	var frame Frame
	glyph := GlyphFor(digit)
	for i := range frame {
		v := float64(glyph[MirrorIndex(i)])
		frame[i] = Encode(v, v, v)
	}
	return frame
}

// Render pushes the frame for digit to sink, exactly NumPixels words in
// ascending position order. It stops at the first sink error.
func Render(digit int, sink PixelSink) error {
	frame := RenderFrame(digit)
	for i, c := range frame {
		if err := sink.Put(c); err != nil {
			return fmt.Errorf("failed to send pixel %d: %w", i, err)
		}
	}
	return nil
}

// At returns the pixel at column x, row y as seen on the mounted matrix,
// with y = 0 the top row. The chain starts at the bottom row.
func (f Frame) At(x, y int) PixelColor {
	return f[(Rows-1-y)*Columns+x]
}
