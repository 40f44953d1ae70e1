//go:build !libretro

package standalone

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Notification layout and colors.
const (
	notificationFontSize = 14
	notificationPadding  = 12
	notificationMargin   = 8
)

var (
	notificationText       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	notificationBackground = color.NRGBA{0x1a, 0x1a, 0x2e, 153} // 60% opacity
)

// Notification displays temporary messages on screen
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	face text.Face

	// Pre-allocated background (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	n := &Notification{}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load font source: %v", err)
		return n
	}
	n.face = &text.GoTextFace{
		Source: source,
		Size:   notificationFontSize,
	}
	return n
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// ShowShort displays a notification with 1 second duration
func (n *Notification) ShowShort(message string) {
	n.Show(message, 1*time.Second)
}

// Message returns the current message, or "" when none is visible.
func (n *Notification) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		return ""
	}
	return n.message
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	return n.Message() != ""
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification in the bottom-right corner
func (n *Notification) Draw(screen *ebiten.Image) {
	message := n.Message()
	if message == "" || n.face == nil {
		return
	}

	bounds := screen.Bounds()
	textWidth, textHeight := text.Measure(message, n.face, 0)

	bgWidth := int(textWidth) + notificationPadding*2
	bgHeight := int(textHeight) + notificationPadding*2
	bgX := bounds.Dx() - bgWidth - notificationMargin
	bgY := bounds.Dy() - bgHeight - notificationMargin

	// Reuse or create background image
	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	n.bg.Fill(notificationBackground)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+notificationPadding), float64(bgY+notificationPadding))
	textOpts.ColorScale.ScaleWithColor(notificationText)
	text.Draw(screen, message, n.face, textOpts)
}
