//go:build !libretro

// Command lc3sim runs an LC-3 object file in a window or on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/user-none/lc3sim/frontend"
	"github.com/user-none/lc3sim/lc3"
	"github.com/user-none/lc3sim/render"
	"github.com/user-none/lc3sim/standalone"
	"github.com/user-none/lc3sim/storage"
	"github.com/user-none/lc3sim/terminal"
)

// overrides holds command line settings. Zero values keep the config.
type overrides struct {
	steps   int
	palette string
	scale   int
	input   string
}

// applyOverrides copies the set flags into cfg and corrects anything out
// of range. A scale flag also sizes the window.
func applyOverrides(cfg *storage.Config, o overrides) *storage.Config {
	if o.steps != 0 {
		cfg.Pacer.StepsPerFrame = o.steps
	}
	if o.palette != "" {
		cfg.Video.Palette = o.palette
	}
	if o.scale != 0 {
		cfg.Video.Scale = o.scale
	}
	if o.input != "" {
		cfg.Input.Mode = o.input
	}

	for _, problem := range storage.ValidateConfig(cfg, render.PaletteNames()) {
		log.Printf("Warning: %s, using default", problem)
	}
	cfg = storage.CorrectConfig(cfg, render.PaletteNames())

	if o.scale != 0 {
		cfg.Window.Width = render.Width * cfg.Video.Scale
		cfg.Window.Height = render.Height * cfg.Video.Scale
	}
	return cfg
}

// loadConfig reads the stored config, falling back to defaults.
func loadConfig() *storage.Config {
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}
	cfg, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: failed to load config, using defaults: %v", err)
		return storage.DefaultConfig()
	}
	return cfg
}

func main() {
	tty := flag.Bool("tty", false, "Run on the terminal instead of in a window")
	steps := flag.Int("steps", 0, "Instructions per frame (default from config)")
	palette := flag.String("palette", "", "Console palette: white, green or amber")
	scale := flag.Int("scale", 0, "Window scale factor, 1-8")
	inputMode := flag.String("input", "", "Input mode: mapped or raw")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lc3sim [options] [program.obj]\n\nRuns an LC-3 program. Without a program a file dialog opens.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys (window): F3 open, F5 reset, F9 copy console, F11 fullscreen, F12 screenshot\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	factory := lc3.NewFactory()
	storage.Init(factory.SystemInfo().DataDirName)

	cfg := applyOverrides(loadConfig(), overrides{
		steps:   *steps,
		palette: *palette,
		scale:   *scale,
		input:   *inputMode,
	})

	var err error
	if *tty {
		if path == "" {
			fmt.Fprintf(os.Stderr, "error: -tty needs a program file\n")
			os.Exit(1)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = terminal.Run(ctx, factory, terminal.Options{ProgramPath: path, Config: cfg})
		stop()
	} else {
		err = standalone.Run(factory, standalone.Options{ProgramPath: path, Config: cfg})
		if errors.Is(err, frontend.ErrNoProgram) {
			return
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
