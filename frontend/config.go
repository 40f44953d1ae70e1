package frontend

import (
	"log"

	"github.com/user-none/lc3sim/input"
	"github.com/user-none/lc3sim/render"
	"github.com/user-none/lc3sim/storage"
)

// OptionsFromConfig builds frontend options from a stored configuration.
// Unknown palette or input mode names fall back to the defaults.
func OptionsFromConfig(cfg *storage.Config, logger *log.Logger) Options {
	if cfg == nil {
		cfg = storage.DefaultConfig()
	}

	palette, _ := render.LookupPalette(cfg.Video.Palette)
	mode, ok := input.ParseMode(cfg.Input.Mode)
	if !ok {
		mode = input.ModeMapped
	}

	return Options{
		StepsPerFrame: cfg.Pacer.StepsPerFrame,
		Foreground:    palette.Foreground,
		Background:    palette.Background,
		InputMode:     mode,
		Logger:        logger,
	}
}
