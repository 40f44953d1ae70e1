// Package render rasterizes a text console into a fixed RGBA framebuffer.
package render

import (
	"image"
	"image/color"

	"github.com/user-none/lc3sim/console"
	"github.com/user-none/lc3sim/glyph"
)

// Framebuffer geometry.
const (
	Width  = 256
	Height = 256
)

// Default colors.
var (
	DefaultForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultBackground = color.RGBA{A: 0xFF}
)

// Renderer owns the pixel buffer. It is allocated once and fully rewritten
// on every Render call.
type Renderer struct {
	img   *image.RGBA
	font  *glyph.Table
	fg    color.RGBA
	bg    color.RGBA
	clear []byte
}

// New creates a Width x Height renderer using the basic font.
func New() *Renderer {
	return NewSize(Width, Height, glyph.Basic())
}

// NewSize creates a renderer with a custom size and glyph table.
func NewSize(width, height int, font *glyph.Table) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if font == nil {
		font = glyph.Basic()
	}
	r := &Renderer{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		font: font,
	}
	r.SetColors(DefaultForeground, DefaultBackground)
	return r
}

// SetColors changes the foreground and background used by later renders.
func (r *Renderer) SetColors(fg, bg color.RGBA) {
	r.fg = fg
	r.bg = bg

	// One background row, copied into every row on clear
	r.clear = make([]byte, r.img.Stride)
	for i := 0; i < len(r.clear); i += 4 {
		r.clear[i] = bg.R
		r.clear[i+1] = bg.G
		r.clear[i+2] = bg.B
		r.clear[i+3] = bg.A
	}
}

// Colors returns the current foreground and background.
func (r *Renderer) Colors() (fg, bg color.RGBA) {
	return r.fg, r.bg
}

// Render clears the buffer to the background and draws every non-empty
// console cell. The returned slice aliases the internal buffer.
func (r *Renderer) Render(con *console.Console) []byte {
	pix := r.img.Pix
	stride := r.img.Stride
	height := r.img.Rect.Dy()
	width := r.img.Rect.Dx()

	for y := 0; y < height; y++ {
		copy(pix[y*stride:(y+1)*stride], r.clear)
	}

	if con == nil {
		return pix
	}

	for row := 0; row < con.Rows(); row++ {
		py := row * glyph.Height
		if py >= height {
			break
		}
		for col := 0; col < con.Cols(); col++ {
			ch := con.Cell(row, col)
			if ch == 0 {
				continue
			}
			px := col * glyph.Width
			if px >= width {
				break
			}
			r.blit(r.font.Lookup(ch), px, py, width, height)
		}
	}
	return pix
}

func (r *Renderer) blit(g glyph.Glyph, px, py, width, height int) {
	pix := r.img.Pix
	stride := r.img.Stride
	for y := 0; y < glyph.Height && py+y < height; y++ {
		bits := g[y]
		if bits == 0 {
			continue
		}
		rowOff := (py + y) * stride
		for x := 0; x < glyph.Width && px+x < width; x++ {
			if bits&(1<<uint(x)) == 0 {
				continue
			}
			off := rowOff + (px+x)*4
			pix[off] = r.fg.R
			pix[off+1] = r.fg.G
			pix[off+2] = r.fg.B
			pix[off+3] = r.fg.A
		}
	}
}

// Image returns the buffer as an image. It is overwritten by the next Render.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Pixels returns the raw RGBA bytes.
func (r *Renderer) Pixels() []byte {
	return r.img.Pix
}

// Stride returns the number of bytes per pixel row.
func (r *Renderer) Stride() int {
	return r.img.Stride
}

// Size returns the buffer dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.img.Rect.Dx(), r.img.Rect.Dy()
}
