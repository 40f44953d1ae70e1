//go:build !libretro

// Package standalone runs a program in a desktop window.
package standalone

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/frontend"
	"github.com/user-none/lc3sim/storage"
)

// Options configures Run.
type Options struct {
	// ProgramPath is the program to load. When empty a file dialog asks
	// for one.
	ProgramPath string

	// Config supplies the initial settings. The window size is written
	// back when the window closes. Nil uses defaults and saves nothing.
	Config *storage.Config

	Logger *log.Logger
}

// runner implements ebiten.Game. Each Update runs exactly one frontend
// frame.
type runner struct {
	fe           *frontend.Frontend
	info         vmcore.SystemInfo
	source       *ebitenSource
	renderer     *FramebufferRenderer
	notification *Notification
	screenshots  *ScreenshotManager
	clipboard    consoleClipboard
	logger       *log.Logger

	config     *storage.Config
	saveConfig bool

	pixels      []byte
	wasHalted   bool
	picking     bool
	pickResults chan string
}

// Run loads a program and runs it in a window until the window closes.
func Run(factory vmcore.Factory, opts Options) error {
	info := factory.SystemInfo()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg := opts.Config
	saveConfig := cfg != nil
	if cfg == nil {
		cfg = storage.DefaultConfig()
	}

	path := opts.ProgramPath
	if path == "" {
		picked, err := PickProgram(info.Extensions)
		if err != nil {
			return err
		}
		if picked == "" {
			return frontend.ErrNoProgram
		}
		path = picked
	}

	fe := frontend.New(factory, frontend.OptionsFromConfig(cfg, logger))
	if err := fe.Load(path); err != nil {
		return err
	}
	defer fe.Unload()

	ebiten.SetWindowTitle(windowTitle(info.CoreName, path))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(fe.AVInfo().FPS))
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowSizeLimits(storage.MinWindowSize, storage.MinWindowSize, -1, -1)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	notification := NewNotification()
	r := &runner{
		fe:           fe,
		info:         info,
		source:       &ebitenSource{},
		renderer:     NewFramebufferRenderer(),
		notification: notification,
		screenshots:  NewScreenshotManager(notification),
		logger:       logger,
		config:       cfg,
		saveConfig:   saveConfig,
		pickResults:  make(chan string, 1),
	}

	err := ebiten.RunGame(r)

	r.saveWindow()

	return err
}

// windowTitle names the window after the core and the loaded program.
func windowTitle(coreName, path string) string {
	if path == "" {
		return coreName
	}
	return coreName + " - " + filepath.Base(path)
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	r.handleHotkeys()
	r.loadPicked()

	r.pixels = r.fe.RunFrame(r.source)

	halted := r.fe.Halted()
	if halted && !r.wasHalted {
		r.notification.ShowDefault("Program halted")
	}
	r.wasHalted = halted
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	if r.pixels == nil {
		return
	}
	rend := r.fe.Renderer()
	_, height := rend.Size()
	r.renderer.DrawFramebuffer(screen, r.pixels, rend.Stride(), height)
	r.notification.Draw(screen)
}

// Layout implements ebiten.Game.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// handleHotkeys processes the window's function keys. None of them are
// keyboard codes the machine can see.
func (r *runner) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		r.pickAsync()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := r.fe.Reset(); err != nil {
			r.logger.Printf("Warning: reset failed: %v", err)
			r.notification.ShowDefault("Reset failed")
		} else {
			r.notification.ShowShort("Reset")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := r.clipboard.Copy(r.fe.Console().Text()); err != nil {
			r.logger.Printf("Warning: failed to copy console: %v", err)
			r.notification.ShowDefault("Clipboard unavailable")
		} else {
			r.notification.ShowShort("Console copied")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if _, err := r.screenshots.TakeScreenshot(r.fe.Renderer().Image()); err != nil {
			r.logger.Printf("Warning: screenshot failed: %v", err)
			r.notification.ShowDefault("Screenshot failed")
		}
	}
}

// pickAsync opens the file dialog without blocking the game loop.
func (r *runner) pickAsync() {
	if r.picking {
		return
	}
	r.picking = true
	extensions := r.info.Extensions
	go func() {
		path, err := PickProgram(extensions)
		if err != nil {
			r.logger.Printf("Warning: %v", err)
		}
		r.pickResults <- path
	}()
}

// loadPicked loads a program chosen through pickAsync.
func (r *runner) loadPicked() {
	select {
	case path := <-r.pickResults:
		r.picking = false
		if path == "" {
			return
		}
		if err := r.fe.Load(path); err != nil {
			r.logger.Printf("Warning: %v", err)
			r.notification.ShowDefault("Failed to load " + filepath.Base(path))
			return
		}
		r.wasHalted = false
		ebiten.SetWindowTitle(windowTitle(r.info.CoreName, path))
	default:
	}
}

// saveWindow stores the final window size and fullscreen state.
func (r *runner) saveWindow() {
	if !r.saveConfig {
		return
	}
	r.config.Window.Fullscreen = ebiten.IsFullscreen()
	if !r.config.Window.Fullscreen {
		w, h := ebiten.WindowSize()
		if w >= storage.MinWindowSize && h >= storage.MinWindowSize {
			r.config.Window.Width = w
			r.config.Window.Height = h
		}
	}
	if err := storage.SaveConfig(r.config); err != nil {
		r.logger.Printf("Warning: failed to save config: %v", err)
	}
}
