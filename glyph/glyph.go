// Package glyph holds the 8x8 monochrome bitmap font used to rasterize the
// text console.
package glyph

const (
	Width  = 8
	Height = 8
)

// Glyph is one 8x8 bitmap. Each byte is a pixel row, top to bottom; bit 0 is
// the leftmost pixel of the row.
type Glyph [Height]byte

// Set reports whether the pixel at column x, row y is lit.
func (g Glyph) Set(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[y]&(1<<uint(x)) != 0
}

// Blank reports whether the glyph has no lit pixels.
func (g Glyph) Blank() bool {
	return g == Glyph{}
}

// Table is an immutable lookup from character code to glyph. Codes outside
// the table resolve to the fallback glyph.
type Table struct {
	glyphs   []Glyph
	fallback Glyph
}

// NewTable creates a table from a copy of glyphs, indexed by character code.
func NewTable(glyphs []Glyph, fallback Glyph) *Table {
	t := &Table{
		glyphs:   make([]Glyph, len(glyphs)),
		fallback: fallback,
	}
	copy(t.glyphs, glyphs)
	return t
}

var basicTable = NewTable(basic[:], Glyph{})

// Basic returns the built-in table covering 7-bit ASCII. Codes 128 and above
// render blank.
func Basic() *Table {
	return basicTable
}

// Lookup returns the glyph for character code c.
func (t *Table) Lookup(c byte) Glyph {
	if int(c) >= len(t.glyphs) {
		return t.fallback
	}
	return t.glyphs[c]
}

// Len returns the number of character codes with their own glyph.
func (t *Table) Len() int {
	return len(t.glyphs)
}
