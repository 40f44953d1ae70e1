//go:build !libretro

package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramebufferRenderer owns the ebiten offscreen buffer and draws the
// frontend's pixel buffer scaled to the window.
type FramebufferRenderer struct {
	offscreen *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

// NewFramebufferRenderer creates a renderer.
func NewFramebufferRenderer() *FramebufferRenderer {
	return &FramebufferRenderer{}
}

// DrawFramebuffer renders RGBA pixel data to the screen with
// aspect-ratio-preserving nearest-neighbour scaling.
func (r *FramebufferRenderer) DrawFramebuffer(screen *ebiten.Image, pixels []byte, stride, height int) {
	if height == 0 || stride == 0 {
		return
	}

	requiredLen := stride * height
	if len(pixels) < requiredLen {
		return
	}

	pixelWidth := stride / 4
	if r.offscreen == nil || r.offscreen.Bounds().Dx() != pixelWidth || r.offscreen.Bounds().Dy() != height {
		r.offscreen = ebiten.NewImage(pixelWidth, height)
	}

	r.offscreen.WritePixels(pixels[:requiredLen])

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, offsetX, offsetY := fitScale(pixelWidth, height, screenW, screenH)

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scale, scale)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	r.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, &r.drawOpts)
}

// fitScale returns the largest uniform scale that fits a nativeW x nativeH
// image into screenW x screenH, and the offsets that center it.
func fitScale(nativeW, nativeH, screenW, screenH int) (scale, offsetX, offsetY float64) {
	scaleX := float64(screenW) / float64(nativeW)
	scaleY := float64(screenH) / float64(nativeH)
	scale = scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	offsetX = (float64(screenW) - float64(nativeW)*scale) / 2
	offsetY = (float64(screenH) - float64(nativeH)*scale) / 2
	return scale, offsetX, offsetY
}
