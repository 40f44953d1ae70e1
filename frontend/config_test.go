package frontend

import (
	"testing"

	"github.com/user-none/lc3sim/input"
	"github.com/user-none/lc3sim/render"
	"github.com/user-none/lc3sim/storage"
)

func TestOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		palette  string
		mode     string
		steps    int
		wantFg   string
		wantMode input.Mode
	}{
		{"defaults", "white", "mapped", 1000, "white", input.ModeMapped},
		{"green raw", "green", "raw", 250, "green", input.ModeRaw},
		{"unknown names", "pink", "chorded", 5, "white", input.ModeMapped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storage.DefaultConfig()
			cfg.Video.Palette = tt.palette
			cfg.Input.Mode = tt.mode
			cfg.Pacer.StepsPerFrame = tt.steps

			opts := OptionsFromConfig(cfg, nil)
			want, _ := render.LookupPalette(tt.wantFg)
			if opts.Foreground != want.Foreground || opts.Background != want.Background {
				t.Errorf("colors = %v/%v, want %v/%v", opts.Foreground, opts.Background, want.Foreground, want.Background)
			}
			if opts.InputMode != tt.wantMode {
				t.Errorf("InputMode = %v, want %v", opts.InputMode, tt.wantMode)
			}
			if opts.StepsPerFrame != tt.steps {
				t.Errorf("StepsPerFrame = %d, want %d", opts.StepsPerFrame, tt.steps)
			}
		})
	}
}

func TestOptionsFromConfig_Nil(t *testing.T) {
	opts := OptionsFromConfig(nil, nil)
	if opts.StepsPerFrame != storage.DefaultConfig().Pacer.StepsPerFrame {
		t.Errorf("StepsPerFrame = %d, want default", opts.StepsPerFrame)
	}
	if opts.Foreground != render.DefaultForeground {
		t.Errorf("Foreground = %v, want %v", opts.Foreground, render.DefaultForeground)
	}
}
