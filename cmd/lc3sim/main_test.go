//go:build !libretro

package main

import (
	"testing"

	"github.com/user-none/lc3sim/storage"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name        string
		o           overrides
		wantSteps   int
		wantPalette string
		wantScale   int
		wantMode    string
		wantWindow  int
	}{
		{"none", overrides{}, 1000, "white", 3, "mapped", 768},
		{"all set", overrides{steps: 50, palette: "amber", scale: 2, input: "raw"}, 50, "amber", 2, "raw", 512},
		{"invalid corrected", overrides{steps: -1, palette: "pink", scale: 99, input: "chorded"}, 1000, "white", 3, "mapped", 768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := applyOverrides(storage.DefaultConfig(), tt.o)
			if cfg.Pacer.StepsPerFrame != tt.wantSteps {
				t.Errorf("StepsPerFrame = %d, want %d", cfg.Pacer.StepsPerFrame, tt.wantSteps)
			}
			if cfg.Video.Palette != tt.wantPalette {
				t.Errorf("Palette = %q, want %q", cfg.Video.Palette, tt.wantPalette)
			}
			if cfg.Video.Scale != tt.wantScale {
				t.Errorf("Scale = %d, want %d", cfg.Video.Scale, tt.wantScale)
			}
			if cfg.Input.Mode != tt.wantMode {
				t.Errorf("Input.Mode = %q, want %q", cfg.Input.Mode, tt.wantMode)
			}
			if cfg.Window.Width != tt.wantWindow || cfg.Window.Height != tt.wantWindow {
				t.Errorf("Window = %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height, tt.wantWindow, tt.wantWindow)
			}
		})
	}
}
