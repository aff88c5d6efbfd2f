package display

const (
	// Columns is the width of the matrix
	Columns = 5
	// Rows is the height of the matrix
	Rows = 5
	// NumPixels is the number of LEDs in one frame
	NumPixels = Columns * Rows
	// NumDigits is the number of glyphs in the table
	NumDigits = 10
)

// Glyph is a row-major lit/unlit mask for one digit. Entries are 0 or 1.
type Glyph [NumPixels]uint8

// Lit reports whether cell i of the glyph is on
func (g Glyph) Lit(i int) bool {
	return g[i] != 0
}

// glyphs is indexed by digit. Rows follow the order the matrix is chained,
// columns are in logical orientation before the per-row mirror.
var glyphs = [NumDigits]Glyph{
	{0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0}, // 0
	{0, 1, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0}, // 1
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 2
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 3
	{0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1}, // 4
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 5
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 6
	{1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1}, // 7
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 8
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 9
}

// GlyphFor returns the glyph for digit, which must be in [0, 9].
func GlyphFor(digit int) Glyph {
	return glyphs[digit]
}
