// Package preview draws a rendered frame as an image of the LED matrix.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"

	"github.com/fkcurrie/digit-matrix-golang/internal/display"
)

// DefaultScale is the edge length of one LED cell in pixels
const DefaultScale = 40

// dotRatio is the LED radius relative to the cell size
const dotRatio = 0.4

var (
	background = colornames.Black
	unlit      = colornames.Darkslategray
)

// Image draws frame as seen on the mounted matrix, one dot per LED. Channel
// values are stretched from the encoded 1% range back to full scale so a lit
// LED appears at full intensity.
func Image(frame display.Frame, scale int) *image.RGBA {
	w, h := display.Columns*scale, display.Rows*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	r := float64(scale) * dotRatio

	for y := 0; y < display.Rows; y++ {
		for x := 0; x < display.Columns; x++ {
			cx := float64(x*scale) + float64(scale)/2
			cy := float64(y*scale) + float64(scale)/2
			filler.SetColor(ledColor(frame.At(x, y)))
			rasterx.AddCircle(cx, cy, r, filler)
			filler.Draw()
			filler.Clear()
		}
	}
	return img
}

// WritePNG renders digit and writes the image to w as PNG
func WritePNG(w io.Writer, digit, scale int) error {
	if digit < 0 || digit >= display.NumDigits {
		return fmt.Errorf("digit must be 0-9, got %d", digit)
	}
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", scale)
	}
	if err := png.Encode(w, Image(display.RenderFrame(digit), scale)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func ledColor(c display.PixelColor) color.Color {
	if c == 0 {
		return unlit
	}
	return color.RGBA{
		R: stretch(c.Red()),
		G: stretch(c.Green()),
		B: stretch(c.Blue()),
		A: 0xff,
	}
}

func stretch(v uint8) uint8 {
	if v >= display.MaxChannel {
		return 0xff
	}
	return uint8(uint32(v) * 0xff / uint32(display.MaxChannel))
}
