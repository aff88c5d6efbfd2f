package display

// Brightness is the global scale applied to every channel. The LEDs are far
// brighter than an indoor digit needs.
const Brightness = 0.01

// MaxChannel is the largest byte Encode can produce for one channel,
// 255 * Brightness truncated.
const MaxChannel uint8 = 2

// PixelColor is a packed WS2812 word: green in bits 24-31, red in 16-23,
// blue in 8-15. The low byte is reserved and always zero.
type PixelColor uint32

// Encode converts normalized RGB intensities into a PixelColor, scaling each
// channel by Brightness and truncating toward zero.
func Encode(r, g, b float64) PixelColor {
	return PixelColor(uint32(channel(g))<<24 | uint32(channel(r))<<16 | uint32(channel(b))<<8)
}

func channel(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v * 255 * Brightness)
}

// Green returns the green channel byte
func (c PixelColor) Green() uint8 { return uint8(c >> 24) }

// Red returns the red channel byte
func (c PixelColor) Red() uint8 { return uint8(c >> 16) }

// Blue returns the blue channel byte
func (c PixelColor) Blue() uint8 { return uint8(c >> 8) }
