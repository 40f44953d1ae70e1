//go:build !libretro

package standalone

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/user-none/lc3sim/storage"
	xdraw "golang.org/x/image/draw"
)

// screenshotScale enlarges saved frames so 8x8 glyphs stay legible.
const screenshotScale = 2

// ScreenshotManager handles taking and saving screenshots
type ScreenshotManager struct {
	notification *Notification
}

// NewScreenshotManager creates a new screenshot manager
func NewScreenshotManager(notification *Notification) *ScreenshotManager {
	return &ScreenshotManager{
		notification: notification,
	}
}

// TakeScreenshot scales frame and saves it as a PNG named after the
// current Unix time. It returns the path written.
func (m *ScreenshotManager) TakeScreenshot(frame image.Image) (string, error) {
	screenshotDir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}
	return m.save(frame, screenshotDir, fmt.Sprintf("%d.png", time.Now().Unix()))
}

func (m *ScreenshotManager) save(frame image.Image, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	fullPath := filepath.Join(dir, filename)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, scaleFrame(frame, screenshotScale)); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	if m.notification != nil {
		m.notification.ShowShort("Screenshot saved")
	}
	return fullPath, nil
}

// scaleFrame enlarges src by an integer factor without smoothing.
func scaleFrame(src image.Image, factor int) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
